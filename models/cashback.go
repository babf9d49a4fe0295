package models

import (
	"time"

	"gorm.io/gorm"
)

// CashbackConfiguration is a cashback program attached to an outlet. A nil/nil date
// window means always active. The used/net budget pair is compared in application
// code — a configuration whose used budget reached its net budget still exists but is
// never shown.
type CashbackConfiguration struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Name               string     `json:"name" gorm:"not null"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`
	NetCashbackBudget  float64    `json:"net_cashback_budget"`
	UsedCashbackBudget float64    `json:"used_cashback_budget" gorm:"default:0"`
	MerchantID         string     `json:"merchant_id" gorm:"index;not null"`
	OutletID           string     `json:"outlet_id" gorm:"index"`
	ReviewID           string     `json:"review_id"`

	Merchant *Merchant `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	Review   *Review   `json:"review,omitempty" gorm:"foreignKey:ReviewID"`

	CashbackConfigurationTiers []CashbackConfigurationTier    `json:"tiers" gorm:"foreignKey:CashbackConfigurationID"`
	EligibleCustomerTypes      []CashbackEligibleCustomerType `json:"-" gorm:"foreignKey:CashbackConfigurationID"`

	// flattened from the eligibility join rows when assembling a response
	EligibleCustomerTypeTokens []string `json:"eligible_customer_types" gorm:"-"`

	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Timestamps
}

type CashbackConfigurationTier struct {
	ID                      string  `json:"id" gorm:"primaryKey"`
	Name                    string  `json:"name"`
	Percentage              float64 `json:"percentage"`
	IsActive                bool    `json:"is_active" gorm:"default:true"`
	CashbackConfigurationID string  `json:"cashback_configuration_id" gorm:"index;not null"`
	ReviewID                string  `json:"review_id"`

	Review    *Review        `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Timestamps
}

// CashbackEligibleCustomerType is one row of the eligibility set for a configuration.
// Rows may carry the All / NonCustomer sentinels as well as concrete customer types.
type CashbackEligibleCustomerType struct {
	ID                      uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	CashbackConfigurationID string `json:"-" gorm:"index;not null"`
	CustomerType            string `json:"customer_type" gorm:"index;not null"`
}
