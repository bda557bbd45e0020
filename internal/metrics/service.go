package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RankingsCalculated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_rankings_calculated_total",
			Help: "The total number of ranking calculations served.",
		}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_registrations_total",
			Help: "The total number of accounts created.",
		}),
		SignIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_sign_ins_total",
			Help: "The total number of successful sign-ins.",
		}),
		SignInFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_sign_in_failures_total",
			Help: "The total number of rejected sign-ins.",
		}),
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_matches_recorded_total",
			Help: "The total number of match results recorded.",
		}),
		PlaytomicFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_playtomic_fetches_total",
			Help: "The total number of Playtomic leaderboard fetches.",
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padel_match_processing_duration_seconds",
			Help:    "The duration of recording and announcing a match.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RankingsCalculated,
		s.Registrations,
		s.SignIns,
		s.SignInFailures,
		s.MatchesRecorded,
		s.PlaytomicFetches,
		s.ProcessingDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRankingsCalculated() { s.RankingsCalculated.Inc() }
func (s *Service) IncRegistrations() { s.Registrations.Inc() }
func (s *Service) IncSignIns() { s.SignIns.Inc() }
func (s *Service) IncSignInFailures() { s.SignInFailures.Inc() }
func (s *Service) IncMatchesRecorded() { s.MatchesRecorded.Inc() }
func (s *Service) IncPlaytomicFetches() { s.PlaytomicFetches.Inc() }

func (s *Service) ObserveProcessingDuration(duration float64) {
	s.ProcessingDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
