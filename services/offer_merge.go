package services

import "merchant-offers-service/models"

// mergeOutlets reduces the fetch results into one record per outlet, keyed by outlet
// id for O(1) lookups. Offer lists concatenate — the same outlet can legitimately
// surface from more than one fetch, each contributing its own offers. The loyalty
// program lives at the merchant level, so it is adopted first-non-nil and never
// duplicated. Output order is first-seen order over the concatenated inputs.
func mergeOutlets(resultSets ...[]models.Outlet) []models.Outlet {
	merged := make(map[string]*models.Outlet)
	var order []string

	for _, set := range resultSets {
		for i := range set {
			outlet := set[i]

			existing, ok := merged[outlet.ID]
			if !ok {
				// normalize absent collections so later appends and filters are uniform
				if outlet.CashbackConfigurations == nil {
					outlet.CashbackConfigurations = []models.CashbackConfiguration{}
				}
				if outlet.ExclusiveOffers == nil {
					outlet.ExclusiveOffers = []models.ExclusiveOffer{}
				}
				stored := outlet
				merged[outlet.ID] = &stored
				order = append(order, outlet.ID)
				continue
			}

			existing.CashbackConfigurations = append(existing.CashbackConfigurations, outlet.CashbackConfigurations...)
			existing.ExclusiveOffers = append(existing.ExclusiveOffers, outlet.ExclusiveOffers...)
			if existing.Merchant.LoyaltyProgram == nil && outlet.Merchant.LoyaltyProgram != nil {
				existing.Merchant.LoyaltyProgram = outlet.Merchant.LoyaltyProgram
			}
		}
	}

	outlets := make([]models.Outlet, 0, len(order))
	for _, id := range order {
		outlets = append(outlets, *merged[id])
	}
	return outlets
}

// filterExhaustedBudgets drops offers whose consumed budget or points reached the
// limit, then outlets left with nothing to show. The used-vs-net comparison is
// between two columns of the same row, which the query layer cannot express, so it
// happens here. The boundary is strict: used == net is exhausted.
func filterExhaustedBudgets(outlets []models.Outlet) []models.Outlet {
	surviving := make([]models.Outlet, 0, len(outlets))

	for _, outlet := range outlets {
		configs := make([]models.CashbackConfiguration, 0, len(outlet.CashbackConfigurations))
		for _, config := range outlet.CashbackConfigurations {
			if config.UsedCashbackBudget < config.NetCashbackBudget {
				config.EligibleCustomerTypeTokens = flattenCashbackEligibility(config.EligibleCustomerTypes)
				configs = append(configs, config)
			}
		}
		outlet.CashbackConfigurations = configs

		offers := make([]models.ExclusiveOffer, 0, len(outlet.ExclusiveOffers))
		for _, offer := range outlet.ExclusiveOffers {
			if offer.UsedOfferBudget < offer.NetOfferBudget {
				offer.EligibleCustomerTypeTokens = flattenExclusiveEligibility(offer.EligibleCustomerTypes)
				offers = append(offers, offer)
			}
		}
		outlet.ExclusiveOffers = offers

		// a program with no issuing limit is never excluded on points
		if program := outlet.Merchant.LoyaltyProgram; program != nil &&
			program.PointsIssuedLimit != nil &&
			program.PointsUsedInPeriod >= *program.PointsIssuedLimit {
			outlet.Merchant.LoyaltyProgram = nil
		}

		if len(outlet.CashbackConfigurations) == 0 &&
			len(outlet.ExclusiveOffers) == 0 &&
			outlet.Merchant.LoyaltyProgram == nil {
			continue
		}

		surviving = append(surviving, outlet)
	}

	return surviving
}

// flattenCashbackEligibility turns the join-table rows back into the plain token list
// the API exposes.
func flattenCashbackEligibility(rows []models.CashbackEligibleCustomerType) []string {
	tokens := make([]string, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, row.CustomerType)
	}
	return tokens
}

func flattenExclusiveEligibility(rows []models.ExclusiveOfferEligibleCustomerType) []string {
	tokens := make([]string, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, row.CustomerType)
	}
	return tokens
}
