package model

type Review struct {
	ID      string `json:"id" msgpack:"id"`
	HostID  string `json:"hostId" msgpack:"hostId" validate:"required"`
	UserID  string `json:"userId" msgpack:"userId" validate:"required"`
	Rating  int    `json:"rating" msgpack:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" msgpack:"comment" validate:"required,min=1,max=2000"`
	TS      int64  `json:"ts" msgpack:"ts"`
}

func (r Review) RecordID() string { return r.ID }
