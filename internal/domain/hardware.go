package domain

import "time"

type Hardware struct {
	ID                int32     `json:"id"`
	Name              string    `json:"name"`
	Manufacturer      string    `json:"manufacturer"`
	Model             string    `json:"model"`
	Description       string    `json:"description"`
	Categories        []string  `json:"categories"`
	QuantityAvailable int32     `json:"quantity_available"`
	MaxPerTeam        int32     `json:"max_per_team"`
	CreatedOn         time.Time `json:"created_on"`
	// QuantityRemaining is derived from outstanding order items and is only
	// populated by the inventory service, never stored.
	QuantityRemaining int32 `json:"quantity_remaining"`
}
