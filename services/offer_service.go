package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"merchant-offers-service/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// OfferService resolves which outlets currently expose at least one valid offer for a
// visitor. Collaborators are injected: GORM for storage, ContextCache for the
// eligibility-context cache.
type OfferService struct {
	DB    *gorm.DB
	Cache ContextCache
}

func NewOfferService(db *gorm.DB, cache ContextCache) *OfferService {
	return &OfferService{DB: db, Cache: cache}
}

// OffersFilter carries the query criteria from the API boundary. Percentage bounds
// are inclusive and independently optional. A min above max is not rejected — it
// simply matches nothing.
type OffersFilter struct {
	UserID        string
	Search        string
	Category      string
	MinPercentage *float64
	MaxPercentage *float64
}

// OfferSummary is the resolution result: the surviving outlets in stable merge order,
// and their count (outlets, not individual offers).
type OfferSummary struct {
	Outlets    []models.Outlet `json:"outlets"`
	TotalCount int             `json:"total_count"`
}

// GetOffers handles GET /offers
func (s *OfferService) GetOffers(c *fiber.Ctx) error {
	filter := OffersFilter{
		UserID:   c.Query("user_id"),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	// fall back to the gateway-supplied identity when the caller didn't pass one
	if filter.UserID == "" {
		if id, ok := c.Locals("user_id").(string); ok {
			filter.UserID = id
		}
	}

	if raw := c.Query("min_percentage"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid min_percentage parameter"})
		}
		filter.MinPercentage = &v
	}
	if raw := c.Query("max_percentage"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid max_percentage parameter"})
		}
		filter.MaxPercentage = &v
	}

	summary, err := s.ResolveOffers(c.Context(), filter)
	if err != nil {
		log.Printf("DB Error resolving offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve offers"})
	}

	return c.JSON(summary)
}

// ResolveOffers runs the full resolution pipeline: eligibility context, three
// concurrent outlet fetches (one per offer type), typed merge, budget filtering and
// assembly. Any fetch failure fails the whole resolution — a partial list would
// misrepresent what is on offer.
func (s *OfferService) ResolveOffers(ctx context.Context, filter OffersFilter) (*OfferSummary, error) {
	now := time.Now()

	userContext, err := s.resolveEligibilityContext(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}

	var cashbackOutlets, exclusiveOutlets, loyaltyOutlets []models.Outlet

	// the data layer cannot express one query spanning the three offer relations, so
	// fetch them in parallel and merge afterwards
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cashbackOutlets, err = s.fetchCashbackOutlets(gctx, now, filter, userContext)
		return err
	})
	g.Go(func() error {
		var err error
		exclusiveOutlets, err = s.fetchExclusiveOutlets(gctx, now, filter, userContext)
		return err
	})
	g.Go(func() error {
		var err error
		loyaltyOutlets, err = s.fetchLoyaltyOutlets(gctx, filter, userContext)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := mergeOutlets(cashbackOutlets, exclusiveOutlets, loyaltyOutlets)
	surviving := filterExhaustedBudgets(merged)

	return &OfferSummary{Outlets: surviving, TotalCount: len(surviving)}, nil
}

// HealthCheck handles GET /health
func (s *OfferService) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
