package metrics

// Metrics defines the interface for collecting application metrics.
type Metrics interface {
	IncRankingsCalculated()
	IncRegistrations()
	IncSignIns()
	IncSignInFailures()
	IncMatchesRecorded()
	IncPlaytomicFetches()
	ObserveProcessingDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
