package main

import (
	"github.com/joho/godotenv"

	bookinghandler "dogroom/internal/bookings/handler"
	bookingservice "dogroom/internal/bookings/service"
	bookingvalidator "dogroom/internal/bookings/validator"
	chathandler "dogroom/internal/chats/handler"
	chatservice "dogroom/internal/chats/service"
	"dogroom/internal/health"
	hosthandler "dogroom/internal/hosts/handler"
	hostservice "dogroom/internal/hosts/service"
	hostvalidator "dogroom/internal/hosts/validator"
	reviewhandler "dogroom/internal/reviews/handler"
	reviewservice "dogroom/internal/reviews/service"
	searchhandler "dogroom/internal/search/handler"
	searchservice "dogroom/internal/search/service"
	"dogroom/internal/seed"
	userhandler "dogroom/internal/users/handler"
	userservice "dogroom/internal/users/service"
	"dogroom/pkg/app"
	"dogroom/pkg/config"
	"dogroom/pkg/contracts"
	"dogroom/pkg/events"
	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

const ServiceName = "dogroom"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	cfg.Log.Info("Starting DogRoom service")

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		cfg.Log.Fatal("Failed to open store", "path", cfg.DBPath, "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			cfg.Log.Error("Failed to close store", "error", err)
		}
	}()

	users, err := store.NewCollection[model.User](db, "user")
	if err != nil {
		cfg.Log.Fatal("Failed to open user collection", "error", err)
	}
	hosts, err := store.NewCollection[model.Host](db, "host")
	if err != nil {
		cfg.Log.Fatal("Failed to open host collection", "error", err)
	}
	chats, err := store.NewCollection[model.ChatBoard](db, "chat")
	if err != nil {
		cfg.Log.Fatal("Failed to open chat collection", "error", err)
	}
	bookings, err := store.NewCollection[model.Booking](db, "booking")
	if err != nil {
		cfg.Log.Fatal("Failed to open booking collection", "error", err)
	}
	reviews, err := store.NewCollection[model.Review](db, "review")
	if err != nil {
		cfg.Log.Fatal("Failed to open review collection", "error", err)
	}

	if cfg.SeedOnStart {
		if err := seed.Ensure(users, hosts, chats, bookings, reviews); err != nil {
			cfg.Log.Fatal("Failed to seed store", "error", err)
		}
		cfg.Log.Info("Seed data ensured")
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				cfg.Log.Error("Failed to close event publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
		cfg.Log.Info("Booking events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	hostSvc := hostservice.NewHostService(hosts, reviews, users, hostvalidator.NewHostValidator(cfg.Log), cfg.Log)
	bookingSvc := bookingservice.NewBookingService(bookings, hosts, users, bookingvalidator.NewBookingValidator(cfg.Log), publisher, cfg.Log)
	searchSvc := searchservice.NewSearchService(hosts, cfg.Log)
	chatSvc := chatservice.NewChatService(chats, cfg.Log)
	reviewSvc := reviewservice.NewReviewService(reviews, hosts, cfg.Log)
	userSvc := userservice.NewUserService(users, cfg.Log)

	apiHandlers := contracts.Handlers{
		hosthandler.NewHostHandler(hostSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		searchhandler.NewSearchHandler(searchSvc, cfg.Log),
		chathandler.NewChatHandler(chatSvc, cfg.Log),
		reviewhandler.NewReviewHandler(reviewSvc, cfg.Log),
		userhandler.NewUserHandler(userSvc, cfg.Log),
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(apiHandlers, health.NewHandler(db, cfg.Log))
	serverApp.Run()
}
