package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsReported = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "report",
		Name:      "workouts_reported_total",
		Help:      "Workout summaries rendered, by training type.",
	}, []string{"training_type"})
	packagesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "report",
		Name:      "packages_failed_total",
		Help:      "Sensor packages that could not be turned into a summary, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsReported, packagesFailed)
}

// RecordWorkoutReported counts a rendered summary.
func RecordWorkoutReported(trainingType string) {
	workoutsReported.WithLabelValues(trainingType).Inc()
}

// RecordPackageFailed counts a package dropped from a report.
func RecordPackageFailed(reason string) {
	packagesFailed.WithLabelValues(reason).Inc()
}
