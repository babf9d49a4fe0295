package models

// CustomerMembership is one raw customer-type fact inside an eligibility context.
type CustomerMembership struct {
	Type       string `json:"type"`
	Rank       int    `json:"rank"`
	MerchantID string `json:"merchant_id"`
}

// EligibilityContext summarizes a visitor's merchant relationships for offer
// eligibility checks. It is derived from CustomerType facts, cached with a short TTL
// and recomputed on any cache miss — it is never the authoritative record.
type EligibilityContext struct {
	CustomerTypes []string             `json:"customer_types"`
	MerchantIDs   []string             `json:"merchant_ids"`
	MaxRank       int                  `json:"max_rank"`
	Memberships   []CustomerMembership `json:"memberships"`
}

// AnonymousEligibilityContext is the fixed context for visitors with no identity:
// only offers open to All (or to NonCustomer, for merchants they have no relation
// with) can match.
func AnonymousEligibilityContext() EligibilityContext {
	return EligibilityContext{
		CustomerTypes: []string{CustomerTypeAll},
		MerchantIDs:   []string{},
		MaxRank:       0,
	}
}
