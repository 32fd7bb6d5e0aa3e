package metrics

import (
	"cuisine/domain"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordMeal(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	kid := domain.Meal{Family: domain.KidFamily, Sandwich: domain.Peanut, Dessert: domain.IceCreamSundae}
	adult := domain.Meal{Family: domain.AdultFamily, Sandwich: domain.Bacon, Dessert: domain.CremeBrulee}

	m.RecordMeal(kid)
	m.RecordMeal(kid)
	m.RecordMeal(adult)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mealsServed.WithLabelValues("kid", "Peanut", "IceCreamSundae")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mealsServed.WithLabelValues("adult", "Bacon", "CremeBrulee")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.mealsServed))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
