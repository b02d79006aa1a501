// Command seed loads the sample Mumbai trip dataset into a fresh
// database: four friends, a representative set of expenses across the
// split policies, and one recorded settlement payment.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/dhruvkap/splitit/internal/config"
	"github.com/dhruvkap/splitit/internal/database"
	"github.com/dhruvkap/splitit/internal/expense"
	"github.com/dhruvkap/splitit/internal/friend"
	"github.com/dhruvkap/splitit/internal/ledger/split"
	"github.com/dhruvkap/splitit/internal/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	friendRepo := friend.NewRepository(db)
	expenseRepo := expense.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	existing, err := friendRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to check roster: %v", err)
	}
	if len(existing) > 0 {
		log.Fatalf("Database already has %d friends; refusing to seed", len(existing))
	}

	friends := []struct {
		id  string
		req friend.CreateFriendRequest
	}{
		{"friend-1", friend.CreateFriendRequest{Name: "Dhruv", Color: "#8B5CF6", DaysPresent: 2}},
		{"friend-2", friend.CreateFriendRequest{Name: "Kartik", Color: "#FF6B35", DaysPresent: 2}},
		{"friend-3", friend.CreateFriendRequest{Name: "Aryan", Color: "#10B981", DaysPresent: 2}},
		{"friend-4", friend.CreateFriendRequest{Name: "Aaron", Color: "#F59E0B", DaysPresent: 1}},
	}
	for _, f := range friends {
		if _, err := friendRepo.Create(ctx, f.id, &f.req); err != nil {
			log.Fatalf("Failed to seed friend %s: %v", f.id, err)
		}
	}
	log.Printf("Seeded %d friends", len(friends))

	everyone := []string{"friend-1", "friend-2", "friend-3", "friend-4"}
	expenses := []*expense.Expense{
		{
			ID: "exp-1", Description: "Airbnb - Bandra day 1", Amount: 6818.50,
			Category: "hotel", PaidBy: "friend-1", SplitType: split.PolicyEqual,
			Participants: everyone, Date: date(2026, 1, 30),
		},
		{
			ID: "exp-2", Description: "JD Honey", Amount: 3800,
			Category: "food", PaidBy: "friend-1", SplitType: split.PolicyEqual,
			Participants: everyone, Date: date(2026, 1, 31),
		},
		{
			ID: "exp-3", Description: "Cabs and metro", Amount: 457,
			Category: "transport", PaidBy: "friend-1", SplitType: split.PolicyByDays,
			Participants: []string{"friend-1", "friend-2", "friend-4"}, Date: date(2026, 2, 3),
		},
		{
			ID: "exp-4", Description: "Elco", Amount: 2500,
			Category: "food", PaidBy: "friend-2", SplitType: split.PolicyCustom,
			Participants: everyone,
			CustomSplits: map[string]float64{"friend-1": 14.8, "friend-2": 56, "friend-3": 20, "friend-4": 9.2},
			Date:         date(2026, 2, 1),
		},
		{
			ID: "exp-5", Description: "Perfume", Amount: 2000,
			Category: "shopping", PaidBy: "friend-4", SplitType: split.PolicyExact,
			Participants: []string{"friend-1", "friend-2", "friend-4"},
			CustomSplits: map[string]float64{"friend-1": 400, "friend-2": 200, "friend-4": 1400},
			Date:         date(2026, 2, 9),
		},
	}
	for _, exp := range expenses {
		if _, err := expenseRepo.Create(ctx, exp); err != nil {
			log.Fatalf("Failed to seed expense %s: %v", exp.ID, err)
		}
	}
	log.Printf("Seeded %d expenses", len(expenses))

	pay := &payment.Payment{
		ID: "pay-1", From: "friend-2", To: "friend-1",
		Amount: 1200, Note: "UPI", Date: date(2026, 2, 9),
	}
	if _, err := paymentRepo.Create(ctx, pay); err != nil {
		log.Fatalf("Failed to seed payment: %v", err)
	}
	log.Println("Seeded 1 payment; done")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
