package models

// Loyalty levels derived from accumulated points.
const (
	LoyaltyLevelBronze = "bronze"
	LoyaltyLevelSilver = "silver"
	LoyaltyLevelGold   = "gold"
)

// Points thresholds for level derivation.
const (
	LoyaltySilverThreshold = 2000
	LoyaltyGoldThreshold   = 5000
)

// LoyaltyPoints tracks one customer's accumulated points. Level is a
// computed-on-write snapshot, recomputed whenever points change.
type LoyaltyPoints struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	Points     int    `json:"points"`
	Level      string `json:"level"`
}

// LoyaltyLevelForPoints derives the level for a points balance.
func LoyaltyLevelForPoints(points int) string {
	switch {
	case points >= LoyaltyGoldThreshold:
		return LoyaltyLevelGold
	case points >= LoyaltySilverThreshold:
		return LoyaltyLevelSilver
	default:
		return LoyaltyLevelBronze
	}
}
