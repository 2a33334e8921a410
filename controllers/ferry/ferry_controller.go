package ferry

import (
	"net/http"

	ferry "github.com/jangir-ritik/andamanexcursion-sub005/services/ferry"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"

	"github.com/gin-gonic/gin"
)

// FerryController контроллер поиска паромов, здоровья операторов и схем мест
type FerryController struct {
	aggregator *ferry.AggregatorService
	health     *ferry.HealthService
	layouts    *ferry.SeatLayoutService
}

// NewFerryController создает контроллер со всеми операторскими адаптерами
func NewFerryController(cfg *config.Config) *FerryController {
	sealink := ferry.NewSealinkService(cfg)
	makruzz := ferry.NewMakruzzService(cfg)
	greenOcean := ferry.NewGreenOceanService(cfg)

	cache := ferry.NewResultCache(ferry.ResultCacheTTL)
	return &FerryController{
		aggregator: ferry.NewAggregatorService(cache, cfg.OperatorTimeout, sealink, makruzz, greenOcean),
		health:     ferry.NewHealthService(cfg.HealthTimeout, sealink, makruzz, greenOcean),
		layouts:    ferry.NewSeatLayoutService(sealink, makruzz, greenOcean),
	}
}

// SearchFerries выполняет поиск паромов по всем операторам
// @Summary Поиск паромов
// @Description Конкурентный поиск по Sealink, Makruzz и Green Ocean
// @Tags Паромы
// @Produce json
// @Param from query string true "Порт отправления"
// @Param to query string true "Порт прибытия"
// @Param date query string true "Дата поездки (YYYY-MM-DD)"
// @Param adults query int true "Количество взрослых"
// @Param children query int false "Количество детей"
// @Param infants query int false "Количество младенцев"
// @Param time query string false "Предпочтительное время (HH:MM)"
// @Param time_filter query string false "Окно отправления (0600-1200, 1200-1800, 1800-2359)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ferry/search [get]
func (fc *FerryController) SearchFerries(c *gin.Context) {
	var params models.FerrySearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid search parameters: " + err.Error(),
		})
		return
	}

	outcome, err := fc.aggregator.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if outcome.IsTotalFailure() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "All ferry operators are currently unavailable. Please try again later.",
			"errors":  outcome.Errors,
		})
		return
	}

	results := outcome.Results
	if windowLabel := c.Query("time_filter"); windowLabel != "" {
		results = ferry.TimeFiltering(results, windowLabel)
	}

	response := gin.H{
		"success": true,
		"data":    results,
		"count":   len(results),
		"partial": outcome.IsPartialFailure,
		"errors":  outcome.Errors,
	}
	if params.PreferredTime != "" {
		response["grouped"] = ferry.SmartFiltering(results, params.PreferredTime)
	}
	c.JSON(http.StatusOK, response)
}

// GetHealth возвращает состояние всех операторов
// @Summary Здоровье операторов
// @Tags Паромы
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ferry/health [get]
func (fc *FerryController) GetHealth(c *gin.Context) {
	report := fc.health.CheckOperatorHealth(c.Request.Context())

	status := http.StatusOK
	if report.OverallStatus == models.OverallAllOffline {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"operators":     report.Operators,
		"overallStatus": report.OverallStatus,
		"timestamp":     report.Timestamp,
	})
}

// GetSeatLayout загружает схему мест парома
// @Summary Схема мест
// @Tags Паромы
// @Accept json
// @Produce json
// @Param request body models.SeatLayoutRequest true "Параметры схемы мест"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /ferry/seat-layout [post]
func (fc *FerryController) GetSeatLayout(c *gin.Context) {
	var req models.SeatLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	layout, err := fc.layouts.LoadSeatLayout(c.Request.Context(), req)
	if err != nil {
		if err == ferry.ErrLayoutSuperseded {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "Seat layout request was superseded by a newer one",
			})
			return
		}
		if err == ferry.ErrSeatSelectionNotSupported {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "This operator assigns seats automatically",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Failed to load seat layout: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"seatLayout": layout},
	})
}
