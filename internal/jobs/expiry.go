package jobs

import (
	"log"
	"time"

	"internhub/internal/repository"

	"github.com/robfig/cron/v3"
)

// StartExpirySweep schedules the hourly job that flips internships whose end
// date has passed to expired. The returned cron should be stopped on
// shutdown.
func StartExpirySweep(internships *repository.InternshipRepository) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		n, err := internships.ExpirePast(time.Now())
		if err != nil {
			log.Printf("internship expiry sweep: %v", err)
			return
		}
		if n > 0 {
			log.Printf("internship expiry sweep: expired %d postings", n)
		}
	})
	if err != nil {
		log.Printf("internship expiry sweep not scheduled: %v", err)
		return c
	}
	c.Start()
	return c
}
