package identify

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeFound       = "found"
	outcomeRandom      = "random"
	outcomeNotFound    = "not_found"
	outcomeMissingName = "missing_name"
	outcomeInternal    = "internal_error"
)

var itemLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "item_lookups_total", Help: "item lookups by outcome"},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(itemLookups)
}

func outcomeFor(err error) string {
	switch statusFor(err) {
	case http.StatusBadRequest:
		return outcomeMissingName
	case http.StatusNotFound:
		return outcomeNotFound
	default:
		return outcomeInternal
	}
}
