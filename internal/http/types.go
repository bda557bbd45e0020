package http

import (
	"net/http"

	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/auth"
	"github.com/mauv0809/padel-ranking/internal/config"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/results"
)

type Server struct {
	Cfg            config.Config
	Accounts       *account.Service
	Users          account.Store
	Tokens         *auth.TokenService
	Results        results.Store
	Processor      *processor.Processor
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
