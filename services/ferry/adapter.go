package ferry

import (
	"context"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// OperatorAdapter скрывает особенности одного операторского API за общим контрактом.
// Search и SeatLayout возвращают данные уже в едином виде; CheckHealth никогда не
// возвращает ошибку — любой сбой превращается в статус.
type OperatorAdapter interface {
	Name() string
	Search(ctx context.Context, params models.FerrySearchParams) ([]models.UnifiedFerryResult, error)
	SeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error)
	CheckHealth(ctx context.Context) models.OperatorHealth
}

// classifyProbe переводит результат пробы в статус оператора.
// Медленный, но живой апстрим считается degraded.
func classifyProbe(err error, latencyMs int64, slowMs int64) models.OperatorHealth {
	if err != nil {
		return models.OperatorHealth{Status: models.HealthOffline, Message: err.Error(), LatencyMs: latencyMs}
	}
	if latencyMs > slowMs {
		return models.OperatorHealth{Status: models.HealthDegraded, Message: "slow response", LatencyMs: latencyMs}
	}
	return models.OperatorHealth{Status: models.HealthOnline, LatencyMs: latencyMs}
}
