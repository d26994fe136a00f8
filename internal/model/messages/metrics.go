package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "daily_expenses",
		Subsystem: "commands",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"command", "error"},
)

func observeResponse(command string, elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(command, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

var knownCommands = map[string]struct{}{
	startCommand:      {},
	helpCommand:       {},
	addCommand:        {},
	editCommand:       {},
	deleteCommand:     {},
	listCommand:       {},
	totalsCommand:     {},
	exportCommand:     {},
	categoriesCommand: {},
}

func commandLabel(cmd string) string {
	if _, ok := knownCommands[cmd]; ok {
		return cmd
	}
	return "other"
}
