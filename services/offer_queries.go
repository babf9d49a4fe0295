package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"merchant-offers-service/models"

	"gorm.io/gorm"
)

// The three fetches below each return complete Outlet graphs so no second round trip
// is needed: merchant, loyalty program (tiers, rewards, reviews) and the offer
// collections scoped down to the rows the visitor is actually eligible for. Soft
// deleted rows are excluded everywhere by GORM's default scope.

func (s *OfferService) approvedReviewIDs() *gorm.DB {
	return s.DB.Model(&models.Review{}).
		Select("id").
		Where("status = ?", models.ReviewStatusApproved)
}

// activePaymentChannelOutletIDs — an outlet with no approved active paybill or till
// is never eligible, whatever it has on offer.
func (s *OfferService) activePaymentChannelOutletIDs() *gorm.DB {
	return s.DB.Model(&models.PaybillOrTill{}).
		Select("outlet_id").
		Where("is_active = ?", true).
		Where("review_id IN (?)", s.approvedReviewIDs())
}

// outletQuery applies the gates shared by all three fetches: outlet active +
// approved, merchant Active (+ optional category), payment channel presence, and the
// free-text search across merchant name/description and outlet name/description.
func (s *OfferService) outletQuery(ctx context.Context, filter OffersFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&models.Outlet{}).
		Select("outlets.*").
		Joins("JOIN merchants ON merchants.id = outlets.merchant_id").
		Where("outlets.is_active = ?", true).
		Where("outlets.review_id IN (?)", s.approvedReviewIDs()).
		Where("merchants.status = ?", models.MerchantStatusActive).
		Where("outlets.id IN (?)", s.activePaymentChannelOutletIDs())

	if filter.Category != "" {
		q = q.Where("merchants.category = ?", filter.Category)
	}

	if filter.Search != "" {
		// LOWER/LIKE instead of ILIKE keeps the clause portable across dialects
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			s.DB.Where("LOWER(merchants.business_name) LIKE ?", term).
				Or("LOWER(merchants.description) LIKE ?", term).
				Or("LOWER(outlets.name) LIKE ?", term).
				Or("LOWER(outlets.description) LIKE ?", term),
		)
	}

	return q
}

// eligibilityClause builds the customer-type disjunction shared by cashback and
// exclusive offers, parameterized by the offer type's eligibility join table:
//  1. the offer lists the All sentinel, or
//  2. it lists NonCustomer and the visitor has no relationship with the merchant, or
//  3. its eligibility set intersects the visitor's held types (held at any merchant —
//     the type itself drives eligibility here, unlike the merchant-scoped loyalty gate).
func (s *OfferService) eligibilityClause(joinModel interface{}, joinColumn string, userContext models.EligibilityContext) *gorm.DB {
	forTypes := func(types ...string) *gorm.DB {
		return s.DB.Model(joinModel).
			Select(joinColumn).
			Where("customer_type IN ?", types)
	}

	clause := s.DB.Where("id IN (?)", forTypes(models.CustomerTypeAll))

	nonCustomer := s.DB.Where("id IN (?)", forTypes(models.CustomerTypeNonCustomer))
	if len(userContext.MerchantIDs) > 0 {
		// any relationship with the merchant disqualifies the visitor as a non-customer there
		nonCustomer = nonCustomer.Where("merchant_id NOT IN ?", userContext.MerchantIDs)
	}
	clause = clause.Or(nonCustomer)

	if len(userContext.CustomerTypes) > 0 {
		clause = clause.Or(s.DB.Where("id IN (?)", forTypes(userContext.CustomerTypes...)))
	}

	return clause
}

func applyPercentageBounds(q *gorm.DB, filter OffersFilter) *gorm.DB {
	if filter.MinPercentage != nil {
		q = q.Where("percentage >= ?", *filter.MinPercentage)
	}
	if filter.MaxPercentage != nil {
		q = q.Where("percentage <= ?", *filter.MaxPercentage)
	}
	return q
}

// matchingTierConfigurationIDs — configurations owning at least one approved, active
// tier inside the requested percentage range.
func (s *OfferService) matchingTierConfigurationIDs(filter OffersFilter) *gorm.DB {
	q := s.DB.Model(&models.CashbackConfigurationTier{}).
		Select("cashback_configuration_id").
		Where("is_active = ?", true).
		Where("review_id IN (?)", s.approvedReviewIDs())
	return applyPercentageBounds(q, filter)
}

// tierScope limits preloaded tiers to the same approved/active/percentage conditions
// used to select their configuration.
func (s *OfferService) tierScope(filter OffersFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return applyPercentageBounds(
			db.Where("is_active = ?", true).
				Where("review_id IN (?)", s.approvedReviewIDs()),
			filter,
		)
	}
}

// cashbackScope holds every condition a cashback configuration must satisfy. The same
// scope picks the outlets (via subquery) and trims the preloaded rows, so the two can
// never drift apart.
func (s *OfferService) cashbackScope(now time.Time, filter OffersFilter, userContext models.EligibilityContext) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("is_active = ?", true).
			Where("review_id IN (?)", s.approvedReviewIDs()).
			Where("((start_date IS NULL AND end_date IS NULL) OR (start_date <= ? AND end_date >= ?))", now, now).
			Where(s.eligibilityClause(&models.CashbackEligibleCustomerType{}, "cashback_configuration_id", userContext)).
			Where("id IN (?)", s.matchingTierConfigurationIDs(filter))
	}
}

// exclusiveScope is the exclusive-offer counterpart of cashbackScope. The date window
// is mandatory here.
func (s *OfferService) exclusiveScope(now time.Time, userContext models.EligibilityContext) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("is_active = ?", true).
			Where("review_id IN (?)", s.approvedReviewIDs()).
			Where("start_date <= ? AND end_date >= ?", now, now).
			Where(s.eligibilityClause(&models.ExclusiveOfferEligibleCustomerType{}, "exclusive_offer_id", userContext))
	}
}

// loyaltyMerchantIDs — merchants whose loyalty program passes the loyalty gates for
// this visitor: active, approved, at least one approved active tier the visitor's max
// rank reaches, and at least one approved active reward.
func (s *OfferService) loyaltyMerchantIDs(userContext models.EligibilityContext) *gorm.DB {
	reachableTiers := s.DB.Model(&models.LoyaltyTier{}).
		Select("loyalty_program_id").
		Where("is_active = ?", true).
		Where("min_rank <= ?", userContext.MaxRank).
		Where("review_id IN (?)", s.approvedReviewIDs())

	activeRewards := s.DB.Model(&models.MerchantLoyaltyReward{}).
		Select("loyalty_program_id").
		Where("is_active = ?", true).
		Where("review_id IN (?)", s.approvedReviewIDs())

	return s.DB.Model(&models.LoyaltyProgram{}).
		Select("merchant_id").
		Where("is_active = ?", true).
		Where("review_id IN (?)", s.approvedReviewIDs()).
		Where("id IN (?)", reachableTiers).
		Where("id IN (?)", activeRewards)
}

// loyaltyPreloads attaches the merchant and its full loyalty-program graph. All three
// fetches carry it, because an outlet surfaced for cashback may still owe its loyalty
// reference to this preload after the merge.
func loyaltyPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Merchant").
		Preload("Merchant.LoyaltyProgram").
		Preload("Merchant.LoyaltyProgram.Review").
		Preload("Merchant.LoyaltyProgram.LoyaltyTiers").
		Preload("Merchant.LoyaltyProgram.LoyaltyTiers.Review").
		Preload("Merchant.LoyaltyProgram.MerchantLoyaltyRewards").
		Preload("Merchant.LoyaltyProgram.MerchantLoyaltyRewards.Review").
		Preload("Review")
}

// fetchCashbackOutlets returns outlets holding at least one eligible cashback
// configuration, with those configurations (and their matching tiers) preloaded.
func (s *OfferService) fetchCashbackOutlets(ctx context.Context, now time.Time, filter OffersFilter, userContext models.EligibilityContext) ([]models.Outlet, error) {
	scope := s.cashbackScope(now, filter, userContext)

	eligibleOutletIDs := scope(s.DB.Model(&models.CashbackConfiguration{})).Select("outlet_id")

	q := s.outletQuery(ctx, filter).
		Where("outlets.id IN (?)", eligibleOutletIDs)

	q = loyaltyPreloads(q).
		Preload("CashbackConfigurations", scope).
		Preload("CashbackConfigurations.Merchant").
		Preload("CashbackConfigurations.Review").
		Preload("CashbackConfigurations.CashbackConfigurationTiers", s.tierScope(filter)).
		Preload("CashbackConfigurations.CashbackConfigurationTiers.Review").
		Preload("CashbackConfigurations.EligibleCustomerTypes")

	var outlets []models.Outlet
	if err := q.Order("outlets.id").Find(&outlets).Error; err != nil {
		return nil, fmt.Errorf("cashback outlet query: %w", err)
	}
	return outlets, nil
}

// fetchExclusiveOutlets returns outlets holding at least one eligible exclusive
// offer, with those offers preloaded.
func (s *OfferService) fetchExclusiveOutlets(ctx context.Context, now time.Time, filter OffersFilter, userContext models.EligibilityContext) ([]models.Outlet, error) {
	scope := s.exclusiveScope(now, userContext)

	eligibleOutletIDs := scope(s.DB.Model(&models.ExclusiveOffer{})).Select("outlet_id")

	q := s.outletQuery(ctx, filter).
		Where("outlets.id IN (?)", eligibleOutletIDs)

	q = loyaltyPreloads(q).
		Preload("ExclusiveOffers", scope).
		Preload("ExclusiveOffers.Merchant").
		Preload("ExclusiveOffers.Review").
		Preload("ExclusiveOffers.EligibleCustomerTypes")

	var outlets []models.Outlet
	if err := q.Order("outlets.id").Find(&outlets).Error; err != nil {
		return nil, fmt.Errorf("exclusive outlet query: %w", err)
	}
	return outlets, nil
}

// fetchLoyaltyOutlets returns outlets of merchants the visitor has a relationship
// with and whose loyalty program the visitor's rank can reach. Loyalty is
// merchant-scoped, so anonymous visitors and visitors with no memberships get nothing.
func (s *OfferService) fetchLoyaltyOutlets(ctx context.Context, filter OffersFilter, userContext models.EligibilityContext) ([]models.Outlet, error) {
	if filter.UserID == "" || len(userContext.Memberships) == 0 {
		return nil, nil
	}

	q := s.outletQuery(ctx, filter).
		Where("merchants.id IN ?", userContext.MerchantIDs).
		Where("merchants.id IN (?)", s.loyaltyMerchantIDs(userContext))

	q = loyaltyPreloads(q)

	var outlets []models.Outlet
	if err := q.Order("outlets.id").Find(&outlets).Error; err != nil {
		return nil, fmt.Errorf("loyalty outlet query: %w", err)
	}
	return outlets, nil
}
