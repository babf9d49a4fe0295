package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	MerchantStatusActive   = "Active"
	MerchantStatusInactive = "Inactive"
)

// Merchant is the business that owns outlets and offers. Only Active merchants
// participate in offer resolution.
type Merchant struct {
	ID           string `json:"id" gorm:"primaryKey"`
	BusinessName string `json:"business_name" gorm:"not null"`
	Slug         string `json:"slug" gorm:"index"`
	Description  string `json:"description"`
	Status       string `json:"status" gorm:"default:'Active';index"`
	Category     string `json:"category" gorm:"index"`

	// One loyalty program per merchant, shared by all its outlets
	LoyaltyProgram *LoyaltyProgram `json:"loyalty_program,omitempty" gorm:"foreignKey:MerchantID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Slug == "" {
		m.Slug = slug.Make(m.BusinessName)
	}
	return nil
}

type LoyaltyProgram struct {
	ID                 string  `json:"id" gorm:"primaryKey"`
	Name               string  `json:"name" gorm:"not null"`
	IsActive           bool    `json:"is_active" gorm:"default:true"`
	PointsUsedInPeriod float64 `json:"points_used_in_period" gorm:"default:0"`
	// nil = no issuing limit, the program is never excluded on points exhaustion
	PointsIssuedLimit *float64 `json:"points_issued_limit,omitempty"`
	MerchantID        string   `json:"merchant_id" gorm:"uniqueIndex;not null"`
	ReviewID          string   `json:"review_id"`

	Review                 *Review                 `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	LoyaltyTiers           []LoyaltyTier           `json:"loyalty_tiers" gorm:"foreignKey:LoyaltyProgramID"`
	MerchantLoyaltyRewards []MerchantLoyaltyReward `json:"loyalty_rewards" gorm:"foreignKey:LoyaltyProgramID"`

	Timestamps
}

type LoyaltyTier struct {
	ID              string `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"not null"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	MinCustomerType string `json:"min_customer_type"`
	// numeric mirror of MinCustomerType, kept indexable for the rank comparison
	MinRank          int    `json:"min_rank" gorm:"index;default:0"`
	LoyaltyProgramID string `json:"loyalty_program_id" gorm:"index;not null"`
	ReviewID         string `json:"review_id"`

	Review    *Review        `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Timestamps
}

type MerchantLoyaltyReward struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	Name             string  `json:"name" gorm:"not null"`
	Description      string  `json:"description"`
	PointsCost       float64 `json:"points_cost"`
	IsActive         bool    `json:"is_active" gorm:"default:true"`
	LoyaltyProgramID string  `json:"loyalty_program_id" gorm:"index;not null"`
	ReviewID         string  `json:"review_id"`

	Review *Review `json:"review,omitempty" gorm:"foreignKey:ReviewID"`

	Timestamps
}
