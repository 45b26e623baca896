package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// movementsRecorded cuenta los movimientos confirmados, etiquetados por tipo (loan|return).
var movementsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sport_stock",
	Name:      "movements_recorded_total",
	Help:      "Movimientos de material confirmados, por tipo.",
}, []string{"kind"})
