// Command createadmin seeds an admin account. Admin accounts cannot be
// created through the API.
//
//	go run ./cmd/createadmin -email admin@univ.edu -password changeme -name "Placement Cell"
package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"placement-portal/config"
	"placement-portal/database"
	"placement-portal/internal/models"
	"placement-portal/internal/repository"
)

func main() {
	name := flag.String("name", "Admin", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required, min 8 chars)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		log.Fatal("usage: createadmin -email <email> -password <min 8 chars> [-name <name>]")
	}

	cfg := config.LoadConfig()
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	users := repository.NewUserRepo(client.Database(cfg.MongoDB))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now().UTC()
	admin := models.User{
		Name:      *name,
		Email:     strings.ToLower(strings.TrimSpace(*email)),
		Password:  string(hash),
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin %s created (id %s)", admin.Email, admin.ID.Hex())
}
