// services/scheduler.go
package services

import (
	"log"
	"time"

	"merchant-offers-service/models"

	"github.com/go-co-op/gocron/v2"
)

func (s *OfferService) StartOfferExpiryScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every hour: deactivate offers whose window has closed, so listings and the
	// time-validity predicate stay in agreement
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			now := time.Now()

			res := s.DB.Model(&models.ExclusiveOffer{}).
				Where("is_active = ? AND end_date < ?", true, now).
				Update("is_active", false)
			if res.Error != nil {
				log.Printf("[Scheduler] DB error expiring exclusive offers: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("✅ Deactivated %d expired exclusive offers", res.RowsAffected)
			}

			res = s.DB.Model(&models.CashbackConfiguration{}).
				Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, now).
				Update("is_active", false)
			if res.Error != nil {
				log.Printf("[Scheduler] DB error expiring cashback configurations: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("✅ Deactivated %d expired cashback configurations", res.RowsAffected)
			}
		}),
	)
}
