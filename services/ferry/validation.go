package ferry

import (
	"fmt"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// ValidationResult результат проверки готовности к оформлению
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// ValidateSeatSelection проверяет выбор мест перед оформлением.
// Проверка зависит от фактического режима (manual/auto), а не только от
// возможностей оператора: под chooser-оператором в ручном режиме количество
// мест проверяется так же строго, как и при обязательном ручном выборе.
func ValidateSeatSelection(selectedSeats []string, totalPassengers int, ferry *models.UnifiedFerryResult, preference string) ValidationResult {
	policy := ResolvePolicy(ferry)
	mode := policy.ResolveMode(preference)

	if mode == PreferenceAuto {
		// Места назначит оператор, локально проверять нечего
		return ValidationResult{IsValid: true}
	}

	if len(selectedSeats) == 0 {
		return ValidationResult{
			IsValid: false,
			Message: "Please select seats before proceeding to checkout",
		}
	}
	if len(selectedSeats) != totalPassengers {
		return ValidationResult{
			IsValid: false,
			Message: fmt.Sprintf("Selected %d seat(s) for %d passenger(s)", len(selectedSeats), totalPassengers),
		}
	}
	return ValidationResult{IsValid: true}
}

// CanProceedToCheckout готовность к оформлению: валидный выбор мест
// плюс выбранный класс обслуживания
func CanProceedToCheckout(selectedSeats []string, totalPassengers int, ferry *models.UnifiedFerryResult, classID, preference string) bool {
	if classID == "" || ferry.Class(classID) == nil {
		return false
	}
	return ValidateSeatSelection(selectedSeats, totalPassengers, ferry, preference).IsValid
}
