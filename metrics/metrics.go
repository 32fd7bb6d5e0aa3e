// Package metrics counts served meals with the Prometheus client library.
package metrics

import (
	"cuisine/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters of one program run
type Metrics struct {
	mealsServed *prometheus.CounterVec
}

// New registers the cuisine counters on reg.
// It panics if the counters are already registered there.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mealsServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cuisine_meals_served_total",
				Help: "Total meals served by family and product variant",
			},
			[]string{"family", "sandwich", "dessert"},
		),
	}
	reg.MustRegister(m.mealsServed)
	return m
}

// RecordMeal counts one served meal
func (m *Metrics) RecordMeal(meal domain.Meal) {
	m.mealsServed.WithLabelValues(
		meal.Family.String(),
		meal.Sandwich.String(),
		meal.Dessert.String(),
	).Inc()
}
