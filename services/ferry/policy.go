package ferry

import "github.com/jangir-ritik/andamanexcursion-sub005/models"

// Seat preference modes
const (
	PreferenceManual = "manual"
	PreferenceAuto   = "auto"
)

// SeatPolicy поведение выбора мест для конкретного рейса.
// Единая таблица правил для всех seat-компонентов — сервис схем, состояние
// выбора и валидация читают одно и то же, а не дублируют условия.
type SeatPolicy struct {
	ManualRequired    bool   `json:"manualRequired"`
	AutoAllowed       bool   `json:"autoAllowed"`
	ChooserShown      bool   `json:"chooserShown"`
	DefaultPreference string `json:"defaultPreference"`
}

// ResolvePolicy выводит политику мест из возможностей оператора.
//
//	seat && !auto                     -> только ручной выбор
//	greenocean или sealink            -> только ручной выбор
//	seat && auto && не sealink        -> выбор пользователя, по умолчанию auto
//	!seat && auto && не sealink       -> только авторассадка, без выбора
func ResolvePolicy(ferry *models.UnifiedFerryResult) SeatPolicy {
	f := ferry.Features
	op := ferry.Operator

	if f.SupportsSeatSelection && !f.SupportsAutoAssignment {
		return SeatPolicy{ManualRequired: true, DefaultPreference: PreferenceManual}
	}
	if op == models.OperatorGreenOcean || op == models.OperatorSealink {
		return SeatPolicy{ManualRequired: true, DefaultPreference: PreferenceManual}
	}
	if f.SupportsSeatSelection && f.SupportsAutoAssignment {
		return SeatPolicy{
			AutoAllowed:       true,
			ChooserShown:      true,
			DefaultPreference: PreferenceAuto,
		}
	}
	// Остальные случаи (включая !seat && !auto): рассадку решает оператор
	return SeatPolicy{AutoAllowed: true, DefaultPreference: PreferenceAuto}
}

// ResolveMode возвращает фактический режим выбора мест с учетом
// предпочтения пользователя. При обязательном ручном выборе предпочтение
// игнорируется.
func (p SeatPolicy) ResolveMode(preference string) string {
	if p.ManualRequired {
		return PreferenceManual
	}
	if p.ChooserShown && preference == PreferenceManual {
		return PreferenceManual
	}
	return PreferenceAuto
}
