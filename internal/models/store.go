package models

type Store struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location,omitempty"`
	CapacityUnits int    `json:"capacity_units,omitempty"`
	Description   string `json:"description,omitempty"`
	Active        bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
