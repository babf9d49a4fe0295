package utils

import (
	"fmt"
	"log"
	"time"

	"merchant-offers-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDemoData loads the demo dataset: three merchants with outlets and payment
// channels, two cashback configurations, two exclusive offers, one loyalty program
// and customer-type facts for two known users. Idempotent — existing rows are left
// untouched.
func SeedDemoData(db *gorm.DB) error {
	now := time.Now()
	windowStart := now.AddDate(-1, 0, 0)
	windowEnd := now.AddDate(1, 0, 0)

	return db.Transaction(func(tx *gorm.DB) error {
		insert := func(value interface{}) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
		}

		var reviews []models.Review
		for i := 1; i <= 15; i++ {
			reviews = append(reviews, models.Review{
				ID:     fmt.Sprintf("review-%d", i),
				Status: models.ReviewStatusApproved,
			})
		}
		if err := insert(&reviews); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}

		merchants := []models.Merchant{
			{ID: "merchant-1", BusinessName: "Premium Coffee Shop", Description: "Artisan coffee and pastries", Status: models.MerchantStatusActive, Category: "Food & Beverage"},
			{ID: "merchant-2", BusinessName: "Tech Electronics Store", Description: "Latest gadgets and electronics", Status: models.MerchantStatusActive, Category: "Electronics"},
			{ID: "merchant-3", BusinessName: "Fashion Boutique", Description: "Trendy clothing and accessories", Status: models.MerchantStatusActive, Category: "Fashion"},
		}
		if err := insert(&merchants); err != nil {
			return fmt.Errorf("seed merchants: %w", err)
		}

		outlets := []models.Outlet{
			{ID: "outlet-1", Name: "Premium Coffee Shop - Downtown", Description: "Main downtown location", IsActive: true, MerchantID: "merchant-1", ReviewID: "review-1"},
			{ID: "outlet-2", Name: "Tech Electronics - Mall", Description: "Shopping mall branch", IsActive: true, MerchantID: "merchant-2", ReviewID: "review-2"},
			{ID: "outlet-3", Name: "Fashion Boutique - City Center", Description: "City center flagship store", IsActive: true, MerchantID: "merchant-3", ReviewID: "review-3"},
		}
		if err := insert(&outlets); err != nil {
			return fmt.Errorf("seed outlets: %w", err)
		}

		paybills := []models.PaybillOrTill{
			{ID: "paybill-1", Name: "Paybill 123456", IsActive: true, OutletID: "outlet-1", ReviewID: "review-4"},
			{ID: "paybill-2", Name: "Till 789012", IsActive: true, OutletID: "outlet-2", ReviewID: "review-5"},
			{ID: "paybill-3", Name: "Paybill 345678", IsActive: true, OutletID: "outlet-3", ReviewID: "review-6"},
		}
		if err := insert(&paybills); err != nil {
			return fmt.Errorf("seed payment channels: %w", err)
		}

		cashbacks := []models.CashbackConfiguration{
			{
				ID: "cashback-1", Name: "5% Cashback for All Customers", IsActive: true,
				MerchantID: "merchant-1", OutletID: "outlet-1",
				NetCashbackBudget: 10000, UsedCashbackBudget: 2000, ReviewID: "review-7",
			},
			{
				ID: "cashback-2", Name: "VIP Cashback Program", IsActive: true,
				StartDate: &windowStart, EndDate: &windowEnd,
				MerchantID: "merchant-2", OutletID: "outlet-2",
				NetCashbackBudget: 50000, UsedCashbackBudget: 10000, ReviewID: "review-8",
			},
		}
		if err := insert(&cashbacks); err != nil {
			return fmt.Errorf("seed cashback configurations: %w", err)
		}

		cashbackEligibility := []models.CashbackEligibleCustomerType{
			{CashbackConfigurationID: "cashback-1", CustomerType: models.CustomerTypeAll},
			{CashbackConfigurationID: "cashback-2", CustomerType: models.CustomerTypeVip},
			{CashbackConfigurationID: "cashback-2", CustomerType: models.CustomerTypeRegular},
		}
		if err := insert(&cashbackEligibility); err != nil {
			return fmt.Errorf("seed cashback eligibility: %w", err)
		}

		tiers := []models.CashbackConfigurationTier{
			{ID: "tier-1", Name: "Standard Tier", Percentage: 5.0, IsActive: true, CashbackConfigurationID: "cashback-1", ReviewID: "review-9"},
			{ID: "tier-2", Name: "Premium Tier", Percentage: 10.0, IsActive: true, CashbackConfigurationID: "cashback-2", ReviewID: "review-10"},
		}
		if err := insert(&tiers); err != nil {
			return fmt.Errorf("seed cashback tiers: %w", err)
		}

		exclusives := []models.ExclusiveOffer{
			{
				ID: "exclusive-1", Name: "20% Off Flash Sale", Description: "Limited time offer on all items",
				StartDate: windowStart, EndDate: windowEnd, IsActive: true,
				MerchantID: "merchant-3", OutletID: "outlet-3",
				NetOfferBudget: 5000, UsedOfferBudget: 1000, ReviewID: "review-11",
			},
			{
				ID: "exclusive-2", Name: "New Customer Welcome Offer", Description: "Special discount for new customers",
				StartDate: windowStart, EndDate: windowEnd, IsActive: true,
				MerchantID: "merchant-1", OutletID: "outlet-1",
				NetOfferBudget: 3000, UsedOfferBudget: 500, ReviewID: "review-12",
			},
		}
		if err := insert(&exclusives); err != nil {
			return fmt.Errorf("seed exclusive offers: %w", err)
		}

		exclusiveEligibility := []models.ExclusiveOfferEligibleCustomerType{
			{ExclusiveOfferID: "exclusive-1", CustomerType: models.CustomerTypeAll},
			{ExclusiveOfferID: "exclusive-2", CustomerType: models.CustomerTypeNew},
			{ExclusiveOfferID: "exclusive-2", CustomerType: models.CustomerTypeNonCustomer},
		}
		if err := insert(&exclusiveEligibility); err != nil {
			return fmt.Errorf("seed exclusive eligibility: %w", err)
		}

		pointsLimit := 100000.0
		program := models.LoyaltyProgram{
			ID: "loyalty-1", Name: "Tech Rewards Program", IsActive: true,
			MerchantID: "merchant-2", PointsUsedInPeriod: 5000, PointsIssuedLimit: &pointsLimit,
			ReviewID: "review-13",
		}
		if err := insert(&program); err != nil {
			return fmt.Errorf("seed loyalty program: %w", err)
		}

		loyaltyTiers := []models.LoyaltyTier{
			{ID: "loyalty-tier-1", Name: "Bronze Tier", IsActive: true, MinCustomerType: models.CustomerTypeNew, MinRank: models.RankOf(models.CustomerTypeNew), LoyaltyProgramID: "loyalty-1", ReviewID: "review-14"},
			{ID: "loyalty-tier-2", Name: "Gold Tier", IsActive: true, MinCustomerType: models.CustomerTypeRegular, MinRank: models.RankOf(models.CustomerTypeRegular), LoyaltyProgramID: "loyalty-1", ReviewID: "review-15"},
		}
		if err := insert(&loyaltyTiers); err != nil {
			return fmt.Errorf("seed loyalty tiers: %w", err)
		}

		reward := models.MerchantLoyaltyReward{
			ID: "reward-1", Name: "Free Gadget", Description: "Redeem for a free accessory",
			PointsCost: 1000, IsActive: true, LoyaltyProgramID: "loyalty-1", ReviewID: "review-1",
		}
		if err := insert(&reward); err != nil {
			return fmt.Errorf("seed loyalty reward: %w", err)
		}

		customerTypes := []models.CustomerType{
			{ID: "ct-1", UserID: "user-1", MerchantID: "merchant-1", Type: models.CustomerTypeRegular, Rank: models.RankOf(models.CustomerTypeRegular)},
			{ID: "ct-2", UserID: "user-1", MerchantID: "merchant-2", Type: models.CustomerTypeVip, Rank: models.RankOf(models.CustomerTypeVip)},
			{ID: "ct-3", UserID: "user-2", MerchantID: "merchant-1", Type: models.CustomerTypeNew, Rank: models.RankOf(models.CustomerTypeNew)},
			{ID: "ct-4", UserID: "user-2", MerchantID: "merchant-3", Type: models.CustomerTypeOccasional, Rank: models.RankOf(models.CustomerTypeOccasional)},
		}
		if err := insert(&customerTypes); err != nil {
			return fmt.Errorf("seed customer types: %w", err)
		}

		log.Println("✅ Demo data seeded")
		return nil
	})
}
