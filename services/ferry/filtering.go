package ferry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// timeWindows фиксированные окна отправления, [start, end) по часу
var timeWindows = map[string][2]int{
	"0600-1200": {6, 12},
	"1200-1800": {12, 18},
	"1800-2359": {18, 24},
}

// TimeWindowLabels валидные метки окон в порядке суток
var TimeWindowLabels = []string{"0600-1200", "1200-1800", "1800-2359"}

// departureHour час отправления из "HH:MM", -1 если не распарсилось
func departureHour(r models.UnifiedFerryResult) int {
	parts := strings.SplitN(r.Schedule.DepartureTime, ":", 2)
	if len(parts) == 0 {
		return -1
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return -1
	}
	return hour
}

// TimeFiltering оставляет рейсы, отправляющиеся внутри окна.
// Окно с start > end трактуется как ночное (через полночь).
// Неизвестная метка окна возвращает список без фильтрации.
func TimeFiltering(results []models.UnifiedFerryResult, windowLabel string) []models.UnifiedFerryResult {
	window, ok := timeWindows[windowLabel]
	if !ok {
		return results
	}
	start, end := window[0], window[1]

	filtered := make([]models.UnifiedFerryResult, 0, len(results))
	for _, r := range results {
		hour := departureHour(r)
		if hour < 0 {
			continue
		}
		var in bool
		if start <= end {
			in = hour >= start && hour < end
		} else {
			// Ночное окно
			in = hour >= start || hour < end
		}
		if in {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SmartFilterResult разбиение результатов по предпочтительному времени
type SmartFilterResult struct {
	PreferredTime []models.UnifiedFerryResult `json:"preferredTime"`
	OtherTimes    []models.UnifiedFerryResult `json:"otherTimes"`
}

// SmartFiltering делит результаты на отправления в пределах ±2 часов от
// предпочтительного времени и все остальные; обе группы отсортированы по
// возрастанию времени отправления. Без предпочтения все уходит в OtherTimes.
func SmartFiltering(results []models.UnifiedFerryResult, preferredTime string) SmartFilterResult {
	out := SmartFilterResult{
		PreferredTime: []models.UnifiedFerryResult{},
		OtherTimes:    []models.UnifiedFerryResult{},
	}

	prefHour := -1
	if preferredTime != "" {
		if h, err := strconv.Atoi(strings.SplitN(preferredTime, ":", 2)[0]); err == nil && h >= 0 && h <= 23 {
			prefHour = h
		}
	}

	for _, r := range results {
		hour := departureHour(r)
		if prefHour >= 0 && hour >= 0 && abs(hour-prefHour) <= 2 {
			out.PreferredTime = append(out.PreferredTime, r)
		} else {
			out.OtherTimes = append(out.OtherTimes, r)
		}
	}

	byDeparture := func(list []models.UnifiedFerryResult) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Schedule.DepartureTime < list[j].Schedule.DepartureTime
		})
	}
	byDeparture(out.PreferredTime)
	byDeparture(out.OtherTimes)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
