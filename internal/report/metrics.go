package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// recomputations counts engine runs per report kind. The engine is
// recomputed from scratch on every request, so this doubles as a request
// counter for the derived views.
var recomputations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "splitit_ledger_recomputations_total",
		Help: "Number of full ledger recomputations, by report kind.",
	},
	[]string{"kind"},
)
