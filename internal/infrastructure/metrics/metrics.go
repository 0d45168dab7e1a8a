// Package metrics expone contadores Prometheus de la API y el servidor
// lateral que los publica en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores operativos de la API. Con registerer nil todos los
// métodos son no-op, útil en tests.
type Metrics struct {
	productsCreated prometheus.Counter
	movements       prometheus.Counter
	alertRuns       *prometheus.CounterVec
}

// New registra los contadores en el registerer indicado.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	productsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_created_total",
		Help: "Productos creados exitosamente.",
	})
	movements := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_movements_total",
		Help: "Movimientos de stock registrados.",
	})
	alertRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_alert_runs_total",
		Help: "Evaluaciones del motor de alertas, por resultado.",
	}, []string{"status"})
	reg.MustRegister(productsCreated, movements, alertRuns)
	return &Metrics{
		productsCreated: productsCreated,
		movements:       movements,
		alertRuns:       alertRuns,
	}
}

// IncProductCreated cuenta un producto creado.
func (m *Metrics) IncProductCreated() {
	if m == nil || m.productsCreated == nil {
		return
	}
	m.productsCreated.Inc()
}

// IncMovement cuenta un movimiento de stock registrado.
func (m *Metrics) IncMovement() {
	if m == nil || m.movements == nil {
		return
	}
	m.movements.Inc()
}

// IncAlertRun cuenta una evaluación de alertas con su resultado ("ok" o
// "error").
func (m *Metrics) IncAlertRun(status string) {
	if m == nil || m.alertRuns == nil {
		return
	}
	m.alertRuns.WithLabelValues(status).Inc()
}
