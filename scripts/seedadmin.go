//go:build ignore

// Seeds a pre-verified admin account. Run with:
//
//	go run scripts/seedadmin.go -email admin@example.com -password 'Secret123' -first Jane -last Doe
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"job-finder-backend/config"
	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/repository/postgres"
	"job-finder-backend/pkg/database"
	"job-finder-backend/pkg/password"
)

func main() {
	email := flag.String("email", "", "admin email")
	mobile := flag.String("mobile", "0000000", "admin mobile number")
	pass := flag.String("password", "", "admin password")
	first := flag.String("first", "Admin", "first name")
	last := flag.String("last", "User", "last name")
	flag.Parse()

	if *email == "" || *pass == "" {
		log.Fatal("both -email and -password are required")
	}
	if err := password.ValidateStrength(*pass); err != nil {
		log.Fatalf("weak password: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	hashed, err := password.NewHasher(cfg).Hash(*pass, domain.RoleAdmin)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	user := &domain.User{
		Email:        *email,
		MobileNumber: *mobile,
		Password:     hashed,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	admin := &domain.Admin{FirstName: *first, LastName: *last}

	if err := postgres.NewAdminRepository(dbPool).CreateWithUser(context.Background(), user, admin); err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Printf("Seeded admin %s (user id %d)\n", user.Email, user.ID)
}
