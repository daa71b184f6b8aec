package models

import "github.com/google/uuid"

// SafepointType - вид безопасной точки
type SafepointType string

const (
	SafepointBranch   SafepointType = "branch"
	SafepointATM      SafepointType = "atm"
	SafepointMerchant SafepointType = "merchant"
)

// Safepoint - место, где можно незаметно попросить о помощи
type Safepoint struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Type      SafepointType `json:"type"`
	City      string        `json:"city"`
	Address   string        `json:"address"`
	Hours     string        `json:"hours"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	IsActive  bool          `json:"is_active"`
}

// RankedSafepoint - точка с расстоянием до запрошенных координат
type RankedSafepoint struct {
	Safepoint
	DistanceKm float64 `json:"distance_km"`
}
