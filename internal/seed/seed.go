// Package seed holds the demo dataset and applies it through the one-shot
// seeding contract of each collection.
package seed

import (
	"time"

	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

const DemoUserID = "u1"

func Users() []model.User {
	return []model.User{
		{ID: DemoUserID, Name: "Alex Doe", Avatar: "https://i.pravatar.cc/150?u=alex"},
		{ID: "u2", Name: "Jane Smith", Avatar: "https://i.pravatar.cc/150?u=jane"},
	}
}

func Hosts() []model.Host {
	return []model.Host{
		{
			ID:            "h1",
			Name:          "Sarah's Pawsome Place",
			Avatar:        "https://i.pravatar.cc/150?u=sarah",
			Bio:           "A loving home for your furry friends. I have a big backyard and two friendly golden retrievers. I work from home, so your dog will have constant supervision and companionship.",
			Rating:        4.9,
			ReviewsCount:  120,
			Tags:          []string{model.ServiceBoarding, model.ServiceDaycare},
			PricePerNight: 55,
			Location:      model.Location{City: "Quebec", Lat: 46.813, Lng: -71.208},
			Verified:      true,
			HouseRules:    []string{"Dogs must be house-trained.", "Must be friendly with other dogs.", "Up-to-date on vaccinations."},
			Gallery:       []string{"/placeholder-dog-1.svg", "/placeholder-dog-2.svg", "/placeholder-dog-3.svg", "/placeholder-dog-4.svg"},
			AllowedPetSizes: []string{model.PetSizeSmall, model.PetSizeMedium},
		},
		{
			ID:            "h2",
			Name:          "Mike's Dog Haven",
			Avatar:        "https://i.pravatar.cc/150?u=mike",
			Bio:           "Experienced dog sitter with a passion for large breeds. I offer long walks, runs, and plenty of playtime. Your dog will be treated like family.",
			Rating:        4.8,
			ReviewsCount:  85,
			Tags:          []string{model.ServiceBoarding, model.ServiceWalking},
			PricePerNight: 60,
			Location:      model.Location{City: "Quebec", Lat: 46.850, Lng: -71.300},
			Verified:      true,
			HouseRules:    []string{"Large breeds welcome!", "No aggressive dogs.", "Provide your own dog food."},
			Gallery:       []string{"/placeholder-dog-2.svg", "/placeholder-dog-3.svg", "/placeholder-dog-4.svg", "/placeholder-dog-1.svg"},
			AllowedPetSizes: []string{model.PetSizeLarge},
		},
		{
			ID:            "h3",
			Name:          "Cozy Critter Care",
			Avatar:        "https://i.pravatar.cc/150?u=emily",
			Bio:           "Perfect for small, shy, or senior dogs who need a quiet and calm environment. I provide a peaceful home with lots of cuddles and one-on-one attention.",
			Rating:        5.0,
			ReviewsCount:  210,
			Tags:          []string{model.ServiceBoarding, model.ServiceDaycare},
			PricePerNight: 50,
			Location:      model.Location{City: "Quebec", Lat: 46.780, Lng: -71.250},
			Verified:      true,
			HouseRules:    []string{"Small dogs only (under 20lbs).", "Must be okay with cats (I have one).", "Special needs dogs welcome."},
			Gallery:       []string{"/placeholder-dog-3.svg", "/placeholder-dog-4.svg", "/placeholder-dog-1.svg", "/placeholder-dog-2.svg"},
			AllowedPetSizes: []string{model.PetSizeSmall},
		},
		{
			ID:            "h4",
			Name:          "Adventure Pups",
			Avatar:        "https://i.pravatar.cc/150?u=jake",
			Bio:           "For the active dog! We go on daily hikes, to the dog park, and have structured play sessions. If your dog has endless energy, this is the place for them.",
			Rating:        4.7,
			ReviewsCount:  95,
			Tags:          []string{model.ServiceDaycare, model.ServiceWalking},
			PricePerNight: 45,
			Location:      model.Location{City: "Quebec", Lat: 46.900, Lng: -71.350},
			Verified:      false,
			HouseRules:    []string{"High-energy dogs preferred.", "Must have good recall.", "Provide a sturdy leash and harness."},
			Gallery:       []string{"/placeholder-dog-4.svg", "/placeholder-dog-1.svg", "/placeholder-dog-2.svg", "/placeholder-dog-3.svg"},
			AllowedPetSizes: []string{model.PetSizeMedium, model.PetSizeLarge},
		},
	}
}

func Chats() []model.ChatBoard {
	now := time.Now().UnixMilli()
	return []model.ChatBoard{
		{
			ID:             "c1",
			Title:          "Chat with Sarah",
			ParticipantIDs: []string{DemoUserID, "h1"},
			Messages: []model.ChatMessage{
				{ID: "m1", ChatID: "c1", UserID: DemoUserID, Text: "Hi Sarah! Just wanted to confirm our booking for next week. Sparky is very excited!", TS: now - 5*time.Minute.Milliseconds()},
				{ID: "m2", ChatID: "c1", UserID: "h1", Text: "Hi Alex! Yes, all confirmed. We can't wait to meet Sparky!", TS: now - 2*time.Minute.Milliseconds()},
			},
		},
		{
			ID:             "c2",
			Title:          "Booking Inquiry - Mike",
			ParticipantIDs: []string{DemoUserID, "h2"},
			Messages: []model.ChatMessage{
				{ID: "m3", ChatID: "c2", UserID: DemoUserID, Text: "Hello, I was wondering if you have availability for a large dog in August?", TS: now - 24*time.Hour.Milliseconds()},
			},
		},
	}
}

func Bookings() []model.Booking {
	now := time.Now()
	day := 24 * time.Hour
	return []model.Booking{
		{
			ID:        "b1",
			HostID:    "h1",
			UserID:    DemoUserID,
			From:      now.Add(5 * day).UnixMilli(),
			To:        now.Add(8 * day).UnixMilli(),
			Status:    model.BookingConfirmed,
			CreatedAt: now.Add(-3 * day).UnixMilli(),
		},
		{
			ID:        "b2",
			HostID:    "h3",
			UserID:    DemoUserID,
			From:      now.Add(15 * day).UnixMilli(),
			To:        now.Add(20 * day).UnixMilli(),
			Status:    model.BookingPending,
			CreatedAt: now.Add(-1 * day).UnixMilli(),
		},
	}
}

func Reviews() []model.Review {
	now := time.Now().UnixMilli()
	day := 24 * time.Hour.Milliseconds()
	return []model.Review{
		{ID: "r1", HostID: "h1", UserID: "u2", Rating: 5, Comment: "Sarah was amazing! Our dog came back so happy and tired. We got daily photo updates. Highly recommend!", TS: now - 5*day},
		{ID: "r2", HostID: "h1", UserID: DemoUserID, Rating: 5, Comment: "The best sitter we've ever had. Her dogs are super friendly and her backyard is perfect.", TS: now - 15*day},
		{ID: "r3", HostID: "h2", UserID: "u2", Rating: 4, Comment: "Mike is great with big dogs. Our German Shepherd had a blast. A bit pricey but worth it for the peace of mind.", TS: now - 8*day},
		{ID: "r4", HostID: "h3", UserID: DemoUserID, Rating: 5, Comment: "Our senior chihuahua is very anxious, but she felt right at home here. So grateful for the calm environment.", TS: now - 3*day},
	}
}

// Ensure seeds every collection. Each EnsureSeed call is idempotent, so
// Ensure itself can run on every startup or request.
func Ensure(
	users *store.Collection[model.User],
	hosts *store.Collection[model.Host],
	chats *store.Collection[model.ChatBoard],
	bookings *store.Collection[model.Booking],
	reviews *store.Collection[model.Review],
) error {
	if err := users.EnsureSeed(Users()); err != nil {
		return err
	}
	if err := hosts.EnsureSeed(Hosts()); err != nil {
		return err
	}
	if err := chats.EnsureSeed(Chats()); err != nil {
		return err
	}
	if err := bookings.EnsureSeed(Bookings()); err != nil {
		return err
	}
	return reviews.EnsureSeed(Reviews())
}
