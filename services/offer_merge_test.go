package services

import (
	"testing"

	"merchant-offers-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOutlets_ConcatenatesOffersPerOutlet(t *testing.T) {
	program := &models.LoyaltyProgram{ID: "loyalty-1"}

	fromCashback := []models.Outlet{{
		ID:                     "outlet-1",
		CashbackConfigurations: []models.CashbackConfiguration{{ID: "cashback-1"}},
	}}
	fromExclusive := []models.Outlet{{
		ID:              "outlet-1",
		ExclusiveOffers: []models.ExclusiveOffer{{ID: "exclusive-1"}},
	}}
	fromLoyalty := []models.Outlet{{
		ID:       "outlet-1",
		Merchant: models.Merchant{LoyaltyProgram: program},
	}}

	merged := mergeOutlets(fromCashback, fromExclusive, fromLoyalty)

	require.Len(t, merged, 1)
	assert.Len(t, merged[0].CashbackConfigurations, 1)
	assert.Len(t, merged[0].ExclusiveOffers, 1)
	assert.Same(t, program, merged[0].Merchant.LoyaltyProgram)
}

func TestMergeOutlets_FirstSeenOrder(t *testing.T) {
	merged := mergeOutlets(
		[]models.Outlet{{ID: "outlet-2"}, {ID: "outlet-1"}},
		[]models.Outlet{{ID: "outlet-3"}, {ID: "outlet-1"}},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, "outlet-2", merged[0].ID)
	assert.Equal(t, "outlet-1", merged[1].ID)
	assert.Equal(t, "outlet-3", merged[2].ID)
}

func TestMergeOutlets_KeepsFirstLoyaltyProgram(t *testing.T) {
	first := &models.LoyaltyProgram{ID: "loyalty-1"}
	second := &models.LoyaltyProgram{ID: "loyalty-2"}

	merged := mergeOutlets(
		[]models.Outlet{{ID: "outlet-1", Merchant: models.Merchant{LoyaltyProgram: first}}},
		[]models.Outlet{{ID: "outlet-1", Merchant: models.Merchant{LoyaltyProgram: second}}},
	)

	require.Len(t, merged, 1)
	assert.Same(t, first, merged[0].Merchant.LoyaltyProgram)
}

func TestMergeOutlets_NormalizesNilCollections(t *testing.T) {
	merged := mergeOutlets([]models.Outlet{{ID: "outlet-1"}})

	require.Len(t, merged, 1)
	assert.NotNil(t, merged[0].CashbackConfigurations)
	assert.NotNil(t, merged[0].ExclusiveOffers)
}

func TestFilterExhaustedBudgets_StrictBoundary(t *testing.T) {
	outlets := []models.Outlet{{
		ID: "outlet-1",
		CashbackConfigurations: []models.CashbackConfiguration{
			{ID: "spent", NetCashbackBudget: 100, UsedCashbackBudget: 100},
			{ID: "nearly-spent", NetCashbackBudget: 100, UsedCashbackBudget: 99},
		},
		ExclusiveOffers: []models.ExclusiveOffer{
			{ID: "spent", NetOfferBudget: 50, UsedOfferBudget: 50},
		},
	}}

	surviving := filterExhaustedBudgets(outlets)

	require.Len(t, surviving, 1)
	require.Len(t, surviving[0].CashbackConfigurations, 1)
	assert.Equal(t, "nearly-spent", surviving[0].CashbackConfigurations[0].ID)
	assert.Empty(t, surviving[0].ExclusiveOffers)
}

func TestFilterExhaustedBudgets_DropsEmptyOutlets(t *testing.T) {
	outlets := []models.Outlet{{
		ID: "outlet-1",
		ExclusiveOffers: []models.ExclusiveOffer{
			{ID: "spent", NetOfferBudget: 50, UsedOfferBudget: 50},
		},
	}}

	assert.Empty(t, filterExhaustedBudgets(outlets))
}

func TestFilterExhaustedBudgets_LoyaltyPointsLimit(t *testing.T) {
	limit := 1000.0

	atLimit := []models.Outlet{{
		ID: "outlet-1",
		Merchant: models.Merchant{LoyaltyProgram: &models.LoyaltyProgram{
			ID: "loyalty-1", PointsUsedInPeriod: 1000, PointsIssuedLimit: &limit,
		}},
	}}
	assert.Empty(t, filterExhaustedBudgets(atLimit))

	underLimit := []models.Outlet{{
		ID: "outlet-1",
		Merchant: models.Merchant{LoyaltyProgram: &models.LoyaltyProgram{
			ID: "loyalty-1", PointsUsedInPeriod: 999, PointsIssuedLimit: &limit,
		}},
	}}
	surviving := filterExhaustedBudgets(underLimit)
	require.Len(t, surviving, 1)
	assert.NotNil(t, surviving[0].Merchant.LoyaltyProgram)

	// an unlimited program survives any usage level
	unlimited := []models.Outlet{{
		ID: "outlet-1",
		Merchant: models.Merchant{LoyaltyProgram: &models.LoyaltyProgram{
			ID: "loyalty-1", PointsUsedInPeriod: 999999,
		}},
	}}
	surviving = filterExhaustedBudgets(unlimited)
	require.Len(t, surviving, 1)
	assert.NotNil(t, surviving[0].Merchant.LoyaltyProgram)
}

func TestFilterExhaustedBudgets_FlattensEligibilityTokens(t *testing.T) {
	outlets := []models.Outlet{{
		ID: "outlet-1",
		CashbackConfigurations: []models.CashbackConfiguration{{
			ID: "cashback-1", NetCashbackBudget: 100,
			EligibleCustomerTypes: []models.CashbackEligibleCustomerType{
				{CustomerType: models.CustomerTypeVip},
				{CustomerType: models.CustomerTypeRegular},
			},
		}},
		ExclusiveOffers: []models.ExclusiveOffer{{
			ID: "exclusive-1", NetOfferBudget: 100,
			EligibleCustomerTypes: []models.ExclusiveOfferEligibleCustomerType{
				{CustomerType: models.CustomerTypeAll},
			},
		}},
	}}

	surviving := filterExhaustedBudgets(outlets)

	require.Len(t, surviving, 1)
	assert.Equal(t, []string{models.CustomerTypeVip, models.CustomerTypeRegular},
		surviving[0].CashbackConfigurations[0].EligibleCustomerTypeTokens)
	assert.Equal(t, []string{models.CustomerTypeAll},
		surviving[0].ExclusiveOffers[0].EligibleCustomerTypeTokens)
}
