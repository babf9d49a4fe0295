package models

import (
	"time"

	"gorm.io/gorm"
)

// Outlet is a merchant location. An outlet only ever reaches a response when it is
// active, approved, and has at least one approved active payment channel.
type Outlet struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	MerchantID  string `json:"merchant_id" gorm:"index;not null"`
	ReviewID    string `json:"review_id"`

	Merchant Merchant `json:"merchant" gorm:"foreignKey:MerchantID"`
	Review   *Review  `json:"review,omitempty" gorm:"foreignKey:ReviewID"`

	CashbackConfigurations []CashbackConfiguration `json:"cashback_configurations" gorm:"foreignKey:OutletID"`
	ExclusiveOffers        []ExclusiveOffer        `json:"exclusive_offers" gorm:"foreignKey:OutletID"`
	PaybillOrTills         []PaybillOrTill         `json:"-" gorm:"foreignKey:OutletID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaybillOrTill is a payment channel (paybill or till number) attached to an outlet.
type PaybillOrTill struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	OutletID string `json:"outlet_id" gorm:"index;not null"`
	ReviewID string `json:"review_id"`

	Review    *Review        `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Timestamps
}
