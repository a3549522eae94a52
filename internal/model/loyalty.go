package model

// LoyaltyStatus is the tier of a loyalty account.
type LoyaltyStatus string

const (
	LoyaltyBronze LoyaltyStatus = "BRONZE"
	LoyaltySilver LoyaltyStatus = "SILVER"
	LoyaltyGold   LoyaltyStatus = "GOLD"
)

// Loyalty describes a user's loyalty account as reported by the loyalty
// service: tier, whole-percentage discount, and how many reservations the
// account has accumulated.
type Loyalty struct {
	Status           LoyaltyStatus `json:"status"`
	Discount         int           `json:"discount"`
	ReservationCount int           `json:"reservationCount"`
}

// DefaultLoyalty is the account substituted when the loyalty service reports
// no account for the user. First-time guests are not members yet but still
// receive the baseline Bronze discount.
func DefaultLoyalty() Loyalty {
	return Loyalty{Status: LoyaltyBronze, Discount: 5, ReservationCount: 1}
}
