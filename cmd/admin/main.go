package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.New()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	stores := storage.NewService(db, nil, logger.Sugar()) // no redis needed for the CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: create-admin, seed-roles, resolve-complaint")
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin create-admin <email> <password> [first_name]")
			os.Exit(1)
		}
		firstName := "Admin"
		if len(os.Args) > 4 {
			firstName = os.Args[4]
		}
		user := &models.User{
			FirstName: firstName,
			Email:     os.Args[2],
			Password:  os.Args[3],
			Roles:     models.RoleAdmin,
		}
		if err := stores.Users.Create(ctx, user); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin user %s created with id %d.\n", user.Email, user.ID)
	case "seed-roles":
		if err := seedRoles(ctx, stores); err != nil {
			log.Fatalf("Error seeding roles: %v", err)
		}
		fmt.Println("Default roles seeded.")
	case "resolve-complaint":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin resolve-complaint <complaint_id>")
			os.Exit(1)
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		if err := resolveComplaint(ctx, stores, uint(id)); err != nil {
			log.Fatalf("Error resolving complaint: %v", err)
		}
		fmt.Printf("Complaint %d has been resolved.\n", id)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func seedRoles(ctx context.Context, stores *storage.Service) error {
	for _, name := range []string{"Support Agent", "Field Inspector", "Supervisor"} {
		role := &models.Role{Name: name}
		if err := stores.Roles.Create(ctx, role); err != nil {
			return err
		}
	}
	return nil
}

func resolveComplaint(ctx context.Context, stores *storage.Service, id uint) error {
	complaint, err := stores.Complaints.FindOne(ctx, id)
	if err != nil {
		return err
	}
	complaint.Status = models.StatusResolved
	_, err = stores.Complaints.Update(ctx, id, complaint)
	return err
}
