package models

import (
	"time"

	"gorm.io/gorm"
)

// ExclusiveOffer is a time-boxed discount attached to an outlet. Unlike cashback
// configurations the date window is mandatory.
type ExclusiveOffer struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date" gorm:"not null"`
	EndDate         time.Time `json:"end_date" gorm:"not null"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	NetOfferBudget  float64   `json:"net_offer_budget"`
	UsedOfferBudget float64   `json:"used_offer_budget" gorm:"default:0"`
	MerchantID      string    `json:"merchant_id" gorm:"index;not null"`
	OutletID        string    `json:"outlet_id" gorm:"index"`
	ReviewID        string    `json:"review_id"`

	Merchant *Merchant `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	Review   *Review   `json:"review,omitempty" gorm:"foreignKey:ReviewID"`

	EligibleCustomerTypes []ExclusiveOfferEligibleCustomerType `json:"-" gorm:"foreignKey:ExclusiveOfferID"`

	// flattened from the eligibility join rows when assembling a response
	EligibleCustomerTypeTokens []string `json:"eligible_customer_types" gorm:"-"`

	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Timestamps
}

type ExclusiveOfferEligibleCustomerType struct {
	ID               uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	ExclusiveOfferID string `json:"-" gorm:"index;not null"`
	CustomerType     string `json:"customer_type" gorm:"index;not null"`
}
