package model

import (
	"math"
	"strings"
)

const (
	PetSizeSmall  = "small"
	PetSizeMedium = "medium"
	PetSizeLarge  = "large"

	ServiceBoarding = "boarding"
	ServiceDaycare  = "daycare"
	ServiceWalking  = "walking"
)

// Fallback coordinates used when a host record carries no usable location.
const (
	DefaultCity = "Quebec"
	DefaultLat  = 46.813
	DefaultLng  = -71.208
)

type Location struct {
	City string  `json:"city" msgpack:"city"`
	Lat  float64 `json:"lat" msgpack:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" msgpack:"lng" validate:"gte=-180,lte=180"`
}

// Normalized coerces the location to finite coordinates and a non-empty
// city so downstream mapping never receives NaN or blank values. A zero
// value counts as missing.
func (l Location) Normalized() Location {
	out := l
	if out == (Location{}) {
		return Location{City: DefaultCity, Lat: DefaultLat, Lng: DefaultLng}
	}
	if !isFinite(out.Lat) {
		out.Lat = DefaultLat
	}
	if !isFinite(out.Lng) {
		out.Lng = DefaultLng
	}
	if strings.TrimSpace(out.City) == "" {
		out.City = DefaultCity
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type Host struct {
	ID              string   `json:"id" msgpack:"id"`
	Name            string   `json:"name" msgpack:"name" validate:"required,min=1,max=100"`
	Avatar          string   `json:"avatar,omitempty" msgpack:"avatar" validate:"omitempty,url"`
	Bio             string   `json:"bio" msgpack:"bio" validate:"max=2000"`
	Rating          float64  `json:"rating" msgpack:"rating" validate:"gte=0,lte=5"`
	ReviewsCount    int      `json:"reviewsCount" msgpack:"reviewsCount" validate:"gte=0"`
	Tags            []string `json:"tags" msgpack:"tags" validate:"required,min=1,dive,oneof=boarding daycare walking"`
	PricePerNight   float64  `json:"pricePerNight" msgpack:"pricePerNight" validate:"gt=0"`
	Location        Location `json:"location" msgpack:"location"`
	Verified        bool     `json:"verified" msgpack:"verified"`
	HouseRules      []string `json:"houseRules" msgpack:"houseRules" validate:"dive,min=1,max=300"`
	Gallery         []string `json:"gallery" msgpack:"gallery"`
	AllowedPetSizes []string `json:"allowedPetSizes" msgpack:"allowedPetSizes" validate:"required,min=1,dive,oneof=small medium large"`
}

func (h Host) RecordID() string { return h.ID }

// AllowsPetSize reports whether the host accepts the given pet size.
func (h Host) AllowsPetSize(size string) bool {
	for _, s := range h.AllowedPetSizes {
		if s == size {
			return true
		}
	}
	return false
}

// OffersAll reports whether the host is tagged with every requested service.
func (h Host) OffersAll(services []string) bool {
	for _, want := range services {
		found := false
		for _, tag := range h.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HostPreview is the trimmed host shape returned by search results.
type HostPreview struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar,omitempty"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Tags          []string `json:"tags"`
	Location      Location `json:"location"`
	Score         float64  `json:"score"`
}
