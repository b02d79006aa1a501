package friend

import "time"

// Friend represents one person on the trip roster. DaysPresent is the
// attendance weight used by the by-days split policy; arrival/departure
// are display metadata the weight is usually derived from.
type Friend struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Color       string     `json:"color"`
	Arrival     *time.Time `json:"arrival,omitempty"`
	Departure   *time.Time `json:"departure,omitempty"`
	DaysPresent float64    `json:"days_present"`
	CreatedAt   time.Time  `json:"created_at"`
}
