package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasklist/internal/config"
	"tasklist/internal/db"
	"tasklist/internal/model"
	"tasklist/internal/repository"
)

const (
	demoUserName     = "demo"
	demoUserPassword = "demo-password"
)

var sampleItems = []model.Item{
	{Name: "walk the dog"},
	{Name: "do the dishes", IsComplete: true},
	{Name: "write a blog post"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := &model.User{Name: demoUserName, PasswordHash: string(hash)}
	switch err := userRepo.Create(ctx, user); {
	case err == nil:
		log.Printf("Created demo user %q (id=%d)", user.Name, user.ID)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		log.Printf("Demo user %q already exists, skipping", demoUserName)
	default:
		log.Fatalf("Failed to create demo user: %v", err)
	}

	for _, item := range sampleItems {
		it := item
		if err := itemRepo.Create(ctx, &it); err != nil {
			log.Fatalf("Failed to create item %q: %v", it.Name, err)
		}
		log.Printf("Created item %q (id=%d)", it.Name, it.ID)
	}

	log.Println("Seed complete")
}
