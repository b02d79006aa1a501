package friend

import "time"

// CreateFriendRequest represents the request body for adding a friend
type CreateFriendRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Color       string     `json:"color,omitempty"`
	Arrival     *time.Time `json:"arrival,omitempty"`
	Departure   *time.Time `json:"departure,omitempty"`
	DaysPresent float64    `json:"days_present" validate:"gte=0"`
}

// UpdateFriendRequest represents the request body for editing a friend
type UpdateFriendRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color       *string    `json:"color,omitempty"`
	Arrival     *time.Time `json:"arrival,omitempty"`
	Departure   *time.Time `json:"departure,omitempty"`
	DaysPresent *float64   `json:"days_present,omitempty" validate:"omitempty,gte=0"`
}

// FriendResponse represents the response for a single friend
type FriendResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	Arrival     string  `json:"arrival,omitempty"`
	Departure   string  `json:"departure,omitempty"`
	DaysPresent float64 `json:"days_present"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Friend model to a FriendResponse DTO
func (f *Friend) ToResponse() *FriendResponse {
	resp := &FriendResponse{
		ID:          f.ID,
		Name:        f.Name,
		Color:       f.Color,
		DaysPresent: f.DaysPresent,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
	}
	if f.Arrival != nil {
		resp.Arrival = f.Arrival.Format(time.RFC3339)
	}
	if f.Departure != nil {
		resp.Departure = f.Departure.Format(time.RFC3339)
	}
	return resp
}
