package ferry

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jangir-ritik/andamanexcursion-sub005/utils"
)

// StartHealthCron опрашивает операторов каждые 30 секунд и складывает
// последний снимок в Redis, чтобы фронт мог дешево его забирать
func StartHealthCron(h *HealthService) {
	go storeHealthSnapshot(h)

	c := cron.New(cron.WithSeconds())
	// каждые 30 секунд
	_, _ = c.AddFunc("*/30 * * * * *", func() { storeHealthSnapshot(h) })
	c.Start()
	log.Printf("[HEALTH CRON] Scheduler started. Operators will be probed every 30s")
}

func storeHealthSnapshot(h *HealthService) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	report := h.CheckOperatorHealth(ctx)
	log.Printf("[HEALTH CRON] overall=%s", report.OverallStatus)

	rdb := utils.GetRedis()
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := rdb.Set(utils.RedisCtx(), "ferry:health:latest", raw, 2*time.Minute).Err(); err != nil {
		log.Printf("[HEALTH CRON] failed to store snapshot: %v", err)
	}
}
