package fsm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reason labels.
const (
	rejectionInvalid    = "invalid_transition"
	rejectionContention = "contention"
)

// Outcome labels.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metric definitions with appropriate labels. Labels use category names,
// which are a closed, caller-declared set, so cardinality stays bounded.
var (
	// transitionsTotal tracks committed transitions by machine and
	// (from, to) category pair.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_transitions_total",
		Help: "Total number of committed transitions by machine, from category, and to category",
	}, []string{"machine", "from", "to"})

	// rejectionsTotal tracks rejected transition requests.
	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_rejections_total",
		Help: "Total number of rejected transition requests by machine and reason (invalid_transition or contention)",
	}, []string{"machine", "reason"})

	// callbackDuration tracks individual callback execution time.
	callbackDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fsm_callback_duration_seconds",
		Help:    "Duration of callback execution by machine and outcome",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"machine", "outcome"})
)

func outcomeLabel(err error) string {
	if err != nil {
		return outcomeError
	}

	return outcomeSuccess
}
