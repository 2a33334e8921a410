package ferry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

func TestValidateSeatSelectionManualEmpty(t *testing.T) {
	ferry := ferryWith(models.OperatorSealink, true, false)

	res := ValidateSeatSelection(nil, 2, ferry, "")

	assert.False(t, res.IsValid)
	assert.Equal(t, "Please select seats before proceeding to checkout", res.Message)
}

func TestValidateSeatSelectionManualCountMismatch(t *testing.T) {
	ferry := ferryWith(models.OperatorGreenOcean, true, false)

	res := ValidateSeatSelection([]string{"A1"}, 3, ferry, "")

	assert.False(t, res.IsValid)
	assert.Equal(t, "Selected 1 seat(s) for 3 passenger(s)", res.Message)
}

func TestValidateSeatSelectionManualExactCount(t *testing.T) {
	ferry := ferryWith(models.OperatorSealink, true, false)

	res := ValidateSeatSelection([]string{"A1", "A2"}, 2, ferry, "")

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Message)
}

func TestValidateSeatSelectionAutoModeAlwaysValid(t *testing.T) {
	ferry := ferryWith(models.OperatorMakruzz, false, true)

	// В auto-режиме локальный выбор не проверяется вовсе
	res := ValidateSeatSelection(nil, 4, ferry, "")
	assert.True(t, res.IsValid)
}

func TestValidateSeatSelectionChooserAutoPreference(t *testing.T) {
	ferry := ferryWith(models.OperatorMakruzz, true, true)

	res := ValidateSeatSelection(nil, 2, ferry, PreferenceAuto)
	assert.True(t, res.IsValid)
}

func TestValidateSeatSelectionChooserManualPreference(t *testing.T) {
	ferry := ferryWith(models.OperatorMakruzz, true, true)

	// Ручной режим под chooser-оператором проверяется так же строго
	res := ValidateSeatSelection([]string{"A1"}, 2, ferry, PreferenceManual)
	assert.False(t, res.IsValid)

	res = ValidateSeatSelection([]string{"A1", "A2"}, 2, ferry, PreferenceManual)
	assert.True(t, res.IsValid)
}

func TestCanProceedToCheckoutRequiresClass(t *testing.T) {
	ferry := ferryWith(models.OperatorMakruzz, false, true)
	ferry.Classes = []models.FerryClass{{ID: "premium", Label: "Premium", Price: 1200}}

	assert.False(t, CanProceedToCheckout(nil, 2, ferry, "", ""))
	assert.False(t, CanProceedToCheckout(nil, 2, ferry, "deluxe", ""))
	assert.True(t, CanProceedToCheckout(nil, 2, ferry, "premium", ""))
}

func TestCanProceedToCheckoutManualSeats(t *testing.T) {
	ferry := ferryWith(models.OperatorSealink, true, false)
	ferry.Classes = []models.FerryClass{{ID: "pClass", Label: "Premium", Price: 1500}}

	assert.False(t, CanProceedToCheckout([]string{"A1"}, 2, ferry, "pClass", ""))
	assert.True(t, CanProceedToCheckout([]string{"A1", "A2"}, 2, ferry, "pClass", ""))
}
