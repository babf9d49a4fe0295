package models

import "time"

// Customer type tokens. All and NonCustomer are sentinels used only on offer
// eligibility lists — they are never stored as a held membership.
const (
	CustomerTypeAll         = "All"
	CustomerTypeNonCustomer = "NonCustomer"
	CustomerTypeNew         = "New"
	CustomerTypeInfrequent  = "Infrequent"
	CustomerTypeOccasional  = "Occasional"
	CustomerTypeRegular     = "Regular"
	CustomerTypeVip         = "Vip"
)

// CustomerTypeRanks fixes the customer hierarchy as a total order. Loyalty tiers gate
// on the numeric rank (min_rank <= visitor max rank) instead of matching type strings,
// which keeps the comparison indexable.
var CustomerTypeRanks = map[string]int{
	CustomerTypeNonCustomer: 0,
	CustomerTypeNew:         1,
	CustomerTypeInfrequent:  2,
	CustomerTypeOccasional:  3,
	CustomerTypeRegular:     4,
	CustomerTypeVip:         5,
}

// RankOf returns the hierarchy rank for a customer type token, 0 for unknown tokens.
func RankOf(customerType string) int {
	return CustomerTypeRanks[customerType]
}

// EligibleTypesAtOrBelow lists every customer type whose rank does not exceed the
// given type's rank, in hierarchy order.
func EligibleTypesAtOrBelow(customerType string) []string {
	ordered := []string{
		CustomerTypeNonCustomer,
		CustomerTypeNew,
		CustomerTypeInfrequent,
		CustomerTypeOccasional,
		CustomerTypeRegular,
		CustomerTypeVip,
	}
	maxRank := RankOf(customerType)
	var types []string
	for _, t := range ordered {
		if CustomerTypeRanks[t] <= maxRank {
			types = append(types, t)
		}
	}
	return types
}

// CustomerType records the relationship a user holds with one merchant. A user holds
// at most one type per merchant; the rank column mirrors the type token.
type CustomerType struct {
	ID         string `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"index;not null"`
	MerchantID string `json:"merchant_id" gorm:"index;not null"`
	Type       string `json:"type" gorm:"not null"`
	Rank       int    `json:"rank" gorm:"not null;default:0"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
