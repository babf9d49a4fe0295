package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"merchant-offers-service/models"
)

const (
	contextCacheKeyPrefix = "offers:user-context:"
	contextCacheTTL       = 180 * time.Second
)

// resolveEligibilityContext produces the visitor's eligibility context. Anonymous
// visitors get the fixed context. Identified visitors hit the cache first; on a miss
// or a cache fault the context is recomputed from CustomerType facts and written back
// with a short TTL. Cache failures never fail the request — only a database error
// during derivation does.
func (s *OfferService) resolveEligibilityContext(ctx context.Context, userID string) (models.EligibilityContext, error) {
	if userID == "" {
		return models.AnonymousEligibilityContext(), nil
	}

	key := contextCacheKeyPrefix + userID

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("Cache read failed for user %s, continuing without cache: %v", userID, err)
		} else if cached != "" {
			var ec models.EligibilityContext
			if err := json.Unmarshal([]byte(cached), &ec); err == nil {
				return ec, nil
			}
			log.Printf("Discarding unreadable cached context for user %s", userID)
		}
	}

	var facts []models.CustomerType
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&facts).Error; err != nil {
		return models.EligibilityContext{}, err
	}

	ec := buildEligibilityContext(facts)

	if s.Cache != nil {
		payload, err := json.Marshal(ec)
		if err == nil {
			if err := s.Cache.SetEx(ctx, key, string(payload), contextCacheTTL); err != nil {
				log.Printf("Cache write failed for user %s, continuing without cache: %v", userID, err)
			}
		}
	}

	return ec, nil
}

// buildEligibilityContext derives the context from raw customer-type facts: the
// distinct held type tokens, the merchants the visitor has any relationship with, and
// the maximum rank across memberships (0 when there are none). The All / NonCustomer
// sentinels are never part of the result — they are resolved during predicate
// construction instead.
func buildEligibilityContext(facts []models.CustomerType) models.EligibilityContext {
	ec := models.EligibilityContext{}
	seen := make(map[string]bool, len(facts))

	for _, fact := range facts {
		if !seen[fact.Type] {
			seen[fact.Type] = true
			ec.CustomerTypes = append(ec.CustomerTypes, fact.Type)
		}
		ec.MerchantIDs = append(ec.MerchantIDs, fact.MerchantID)
		if fact.Rank > ec.MaxRank {
			ec.MaxRank = fact.Rank
		}
		ec.Memberships = append(ec.Memberships, models.CustomerMembership{
			Type:       fact.Type,
			Rank:       fact.Rank,
			MerchantID: fact.MerchantID,
		})
	}

	return ec
}
