package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"task-service/internal/application/command"
	"task-service/internal/application/services"
	"task-service/internal/config"
	"task-service/internal/db"
	"task-service/internal/domain"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/events"
)

// seed creates the first admin account. Running it again with the same
// email is a no-op.
func main() {
	name := flag.String("name", config.GetEnvAsString("SEED_ADMIN_NAME", "Admin"), "admin display name")
	email := flag.String("email", config.GetEnvAsString("SEED_ADMIN_EMAIL", "admin@example.com"), "admin email")
	password := flag.String("password", config.GetEnvAsString("SEED_ADMIN_PASSWORD", ""), "admin password")
	flag.Parse()

	if *password == "" {
		log.Fatal("a password is required (-password or SEED_ADMIN_PASSWORD)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer stores.Close(context.Background())

	// The seed always creates an admin, whatever invite token is configured.
	const seedToken = "seed"
	userService := services.NewUserService(stores.Users, stores.Tasks, infrastructure.NewRedisServiceFromClient(nil), events.NoopPublisher{}, seedToken)

	result, err := userService.CreateUser(ctx, &command.CreateUserCommand{
		Name:             *name,
		Email:            *email,
		Password:         *password,
		AdminInviteToken: seedToken,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		log.Printf("user %s already exists, nothing to do", *email)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Printf("created admin %s (%s)", result.Result.Email, result.Result.Id)
}
