package main

import (
	"context"
	stderrors "errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ratehub/internal/config"
	"ratehub/internal/db"
	"ratehub/internal/model"
	"ratehub/internal/repository"
	"ratehub/internal/service"
)

const (
	userPassword  = "User@123"
	ownerPassword = "Owner@123"
)

type seedStore struct {
	name    string
	email   string
	address string
}

type seedUser struct {
	name    string
	email   string
	address string
	role    model.Role
}

var stores = []seedStore{
	{"Tech Gadgets Hub", "tech@gadgets.com", "456 Digital Avenue, Silicon Valley"},
	{"Green Garden Mart", "garden@mart.com", "789 Nature Lane, Eco City"},
	{"Urban Coffee House", "urban@coffee.com", "101 Caffeine Street, Downtown"},
	{"Fit & Fab Gym", "gym@fitfab.com", "202 Muscle Road, Health Park"},
	{"Gourmet Bites", "gourmet@bites.com", "303 Delicious Way, Food Street"},
}

var users = []seedUser{
	{"John Doe the Second Full Name", "john@test.com", "45 Blue Street, New York", model.RoleUser},
	{"Jane Smith Professional Tester", "jane@test.com", "67 Red Avenue, London", model.RoleUser},
}

// The owner's email matches "Tech Gadgets Hub" so the owner link resolves.
var owner = seedUser{"Mark TechOwnerington StoreOwner", "tech@gadgets.com", "77 Silicon Square", model.RoleStoreOwner}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Store{}, &model.Rating{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)

	created, err := service.EnsureAdmin(ctx, userRepo, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminAddress)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if created {
		log.Printf("Admin seeded: %s / %s", cfg.AdminEmail, cfg.AdminPassword)
	}

	seededStores := make([]*model.Store, 0, len(stores))
	for _, s := range stores {
		store, err := ensureStore(ctx, storeRepo, s)
		if err != nil {
			log.Fatalf("Failed to seed store %s: %v", s.name, err)
		}
		seededStores = append(seededStores, store)
	}
	log.Println("Stores seeded")

	seededUsers := make([]*model.User, 0, len(users))
	for _, u := range users {
		user, err := ensureUser(ctx, userRepo, u, userPassword)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.email, err)
		}
		seededUsers = append(seededUsers, user)
	}
	log.Println("Users seeded")

	ownerUser, err := ensureUser(ctx, userRepo, owner, ownerPassword)
	if err != nil {
		log.Fatalf("Failed to seed store owner: %v", err)
	}
	if store := seededStores[0]; store.OwnerID == nil {
		ownerID := ownerUser.ID
		store.OwnerID = &ownerID
		if err := storeRepo.Update(ctx, store); err != nil {
			log.Fatalf("Failed to link store owner: %v", err)
		}
	}
	log.Println("Store owner seeded")

	// Deterministic values so reruns leave the dataset unchanged.
	for i, user := range seededUsers {
		for j, store := range seededStores {
			value := (i+j)%model.MaxRatingValue + 1
			if _, err := ratingService.SubmitRating(ctx, user.ID, store.ID, value); err != nil {
				log.Fatalf("Failed to seed rating: %v", err)
			}
		}
	}
	log.Println("Sample ratings seeded")

	log.Println("Seeding completed successfully!")
}

// ensureStore creates a store unless one with the same email already exists.
func ensureStore(ctx context.Context, repo repository.StoreRepository, s seedStore) (*model.Store, error) {
	existing, err := repo.FindByEmail(ctx, s.email)
	if err == nil {
		return existing, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	store := &model.Store{Name: s.name, Email: s.email, Address: s.address}
	if err := repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// ensureUser creates a user unless one with the same email already exists.
func ensureUser(ctx context.Context, repo repository.UserRepository, u seedUser, password string) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, u.email)
	if err == nil {
		return existing, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         u.name,
		Email:        u.email,
		PasswordHash: string(hashed),
		Address:      u.address,
		Role:         u.role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
