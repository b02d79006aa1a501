package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTripFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write trip file: %v", err)
	}
	return path
}

func TestLoadTrip(t *testing.T) {
	path := writeTripFile(t, `
name = "Mumbai Trip 2026"
location = "Mumbai"
start_date = "2026-01-30"
end_date = "2026-02-09"
currency = "INR"
currency_symbol = "₹"

[[categories]]
id = "food"
name = "Food & Drinks"
icon = "🍽️"
color = "#FF6B35"

[[categories]]
id = "hotel"
name = "Hotel"
icon = "🏨"
color = "#8B5CF6"
`)

	trip, err := LoadTrip(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Name != "Mumbai Trip 2026" {
		t.Errorf("Name = %q, want %q", trip.Name, "Mumbai Trip 2026")
	}
	if trip.CurrencySymbol != "₹" {
		t.Errorf("CurrencySymbol = %q, want ₹", trip.CurrencySymbol)
	}
	if len(trip.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(trip.Categories))
	}

	category, ok := trip.Category("food")
	if !ok {
		t.Fatal("category food not found")
	}
	if category.Name != "Food & Drinks" {
		t.Errorf("category name = %q, want %q", category.Name, "Food & Drinks")
	}
	if _, ok := trip.Category("missing"); ok {
		t.Error("lookup of missing category should fail")
	}
}

func TestLoadTripMissingFileUsesDefaults(t *testing.T) {
	trip, err := LoadTrip(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trip.Categories) == 0 {
		t.Fatal("default trip has no categories")
	}
	if _, ok := trip.Category("other"); !ok {
		t.Error("default taxonomy is missing the other category")
	}
}

func TestLoadTripValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "duplicate category id",
			contents: `
name = "Trip"
[[categories]]
id = "food"
name = "Food"
[[categories]]
id = "food"
name = "Also food"
`,
		},
		{
			name: "empty category id",
			contents: `
name = "Trip"
[[categories]]
id = ""
name = "Nameless"
`,
		},
		{
			name:     "malformed toml",
			contents: `name = `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTrip(writeTripFile(t, tt.contents)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL default is empty")
	}
	if cfg.TripFile == "" {
		t.Error("TripFile default is empty")
	}
}
