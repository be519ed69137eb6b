package model

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingRejected  = "rejected"
)

// Booking holds a stay request against a host. From and To are epoch
// milliseconds forming the half-open interval [From, To).
type Booking struct {
	ID        string `json:"id" msgpack:"id"`
	HostID    string `json:"hostId" msgpack:"hostId" validate:"required"`
	UserID    string `json:"userId" msgpack:"userId" validate:"required"`
	From      int64  `json:"from" msgpack:"from" validate:"required,gt=0"`
	To        int64  `json:"to" msgpack:"to" validate:"required,gt=0"`
	Status    string `json:"status" msgpack:"status" validate:"required,oneof=pending confirmed cancelled rejected"`
	CreatedAt int64  `json:"createdAt" msgpack:"createdAt"`
}

func (b Booking) RecordID() string { return b.ID }

// Active reports whether the booking still blocks its dates.
func (b Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// Overlaps applies the half-open interval test: touching endpoints do not
// overlap.
func (b Booking) Overlaps(from, to int64) bool {
	return from < b.To && to > b.From
}
