package model

// Request payloads accepted at the API boundary. Validation happens here,
// before anything touches storage.

type BookingRequest struct {
	HostID string `json:"hostId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	From   int64  `json:"from" validate:"required"`
	To     int64  `json:"to" validate:"required"`
}

type SearchRequest struct {
	PetSize  string   `json:"petSize,omitempty" validate:"omitempty,oneof=small medium large"`
	Services []string `json:"services,omitempty" validate:"omitempty,dive,oneof=boarding daycare walking"`
}

type ReviewRequest struct {
	HostID  string `json:"hostId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}
