package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Trip is the per-deployment trip description: display metadata, the
// currency label, and the category taxonomy expenses are tagged with.
// The engine treats category ids as opaque strings; the metadata here is
// purely for presentation.
type Trip struct {
	Name           string     `toml:"name"`
	Location       string     `toml:"location"`
	StartDate      string     `toml:"start_date"`
	EndDate        string     `toml:"end_date"`
	Currency       string     `toml:"currency"`
	CurrencySymbol string     `toml:"currency_symbol"`
	Categories     []Category `toml:"categories"`
}

// Category is one entry of the expense category taxonomy
type Category struct {
	ID    string `toml:"id" json:"id"`
	Name  string `toml:"name" json:"name"`
	Icon  string `toml:"icon" json:"icon"`
	Color string `toml:"color" json:"color"`
}

// LoadTrip reads the trip description from a TOML file. A missing file is
// not an error: the built-in default trip is returned so the service can
// start without any configuration.
func LoadTrip(path string) (*Trip, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultTrip(), nil
	}

	trip := &Trip{}
	if _, err := toml.DecodeFile(path, trip); err != nil {
		return nil, fmt.Errorf("failed to parse trip config %s: %w", path, err)
	}

	if len(trip.Categories) == 0 {
		trip.Categories = DefaultTrip().Categories
	}

	seen := make(map[string]bool, len(trip.Categories))
	for _, c := range trip.Categories {
		if c.ID == "" {
			return nil, fmt.Errorf("trip config %s: category with empty id", path)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("trip config %s: duplicate category id %q", path, c.ID)
		}
		seen[c.ID] = true
	}

	return trip, nil
}

// DefaultTrip returns the built-in trip description and category taxonomy
func DefaultTrip() *Trip {
	return &Trip{
		Name:           "Group Trip",
		Currency:       "INR",
		CurrencySymbol: "₹",
		Categories: []Category{
			{ID: "hotel", Name: "Hotel", Icon: "🏨", Color: "#8B5CF6"},
			{ID: "food", Name: "Food & Drinks", Icon: "🍽️", Color: "#FF6B35"},
			{ID: "transport", Name: "Transport", Icon: "🚕", Color: "#10B981"},
			{ID: "activities", Name: "Activities", Icon: "🎭", Color: "#F59E0B"},
			{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#EC4899"},
			{ID: "other", Name: "Other", Icon: "📦", Color: "#6B7280"},
		},
	}
}

// Category looks up a category by id
func (t *Trip) Category(id string) (Category, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
