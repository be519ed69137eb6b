package model

type User struct {
	ID     string `json:"id" msgpack:"id" validate:"required"`
	Name   string `json:"name" msgpack:"name" validate:"required,min=1,max=100"`
	Avatar string `json:"avatar,omitempty" msgpack:"avatar" validate:"omitempty,url"`
}

func (u User) RecordID() string { return u.ID }
