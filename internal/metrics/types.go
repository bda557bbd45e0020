package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	RankingsCalculated prometheus.Counter
	Registrations      prometheus.Counter
	SignIns            prometheus.Counter
	SignInFailures     prometheus.Counter
	MatchesRecorded    prometheus.Counter
	PlaytomicFetches   prometheus.Counter
	ProcessingDuration prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
