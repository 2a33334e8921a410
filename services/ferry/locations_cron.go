package ferry

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jangir-ritik/andamanexcursion-sub005/utils"
)

// StartLocationsCron schedules nightly refresh of operator location lists into Redis
func StartLocationsCron(greenOcean *GreenOceanService) {
	go refreshLocations(greenOcean)

	c := cron.New()
	// 0 3 * * * — at 03:00 every day
	_, _ = c.AddFunc("0 3 * * *", func() { refreshLocations(greenOcean) })
	c.Start()
	log.Printf("[LOCATIONS CRON] Scheduler started. Location lists will refresh nightly at 03:00")
}

func refreshLocations(greenOcean *GreenOceanService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := greenOcean.LocationList(ctx)
	if err != nil {
		log.Printf("[LOCATIONS CRON] greenocean location list failed: %v", err)
		utils.LogError(err, "greenocean location list refresh")
		return
	}

	rdb := utils.GetRedis()
	if rdb == nil {
		return
	}
	if err := rdb.Set(utils.RedisCtx(), "ferry:greenocean:locations", raw, 48*time.Hour).Err(); err != nil {
		log.Printf("[LOCATIONS CRON] failed to store location list: %v", err)
		return
	}
	log.Printf("[LOCATIONS CRON] greenocean location list refreshed (%d bytes)", len(raw))
}
