package http

import (
	"net/http"

	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/auth"
	"github.com/mauv0809/padel-ranking/internal/config"
	"github.com/mauv0809/padel-ranking/internal/http/handlers"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/results"
)

func NewServer(cfg config.Config, accounts *account.Service, users account.Store, tokens *auth.TokenService, resultStore results.Store, proc *processor.Processor, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Cfg:            cfg,
		Accounts:       accounts,
		Users:          users,
		Tokens:         tokens,
		Results:        resultStore,
		Processor:      proc,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(h, paramsMiddleware, s.Tokens.RequireUser)
	requireUser := Middleware(s.Tokens.RequireUser)
	verifySlack := slackVerifier(s.Cfg.Slack.SigningSecret)
	verifyPush := pushAuth(s.Cfg.PubSubPushToken)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /ranking/calculate", Chain(handlers.CalculateHandler(s.Metrics), paramsMiddleware))
	s.Router.Handle("GET /ranking/head-to-head", Chain(handlers.HeadToHeadHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("GET /leaderboard", Chain(handlers.LeaderboardHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("GET /leaderboard/playtomic", Chain(handlers.PlaytomicLeaderboardHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /leaderboard/post", Chain(handlers.PostLeaderboardHandler(s.Processor), paramsMiddleware, requireUser))

	s.Router.Handle("POST /auth/register", Chain(handlers.RegisterHandler(s.Accounts), paramsMiddleware))
	s.Router.Handle("POST /auth/login", Chain(handlers.LoginHandler(s.Accounts), paramsMiddleware))
	s.Router.Handle("POST /auth/logout", Chain(handlers.LogoutHandler(), paramsMiddleware, requireUser))
	s.Router.Handle("POST /auth/password-reset", Chain(handlers.PasswordResetHandler(s.Accounts), paramsMiddleware))
	s.Router.Handle("POST /auth/password-reset/confirm", Chain(handlers.PasswordResetConfirmHandler(s.Accounts), paramsMiddleware))

	s.Router.Handle("GET /me", Chain(handlers.MeHandler(s.Accounts), paramsMiddleware, requireUser))
	s.Router.Handle("GET /users", Chain(handlers.ListUsersHandler(s.Accounts), paramsMiddleware, requireUser))
	s.Router.Handle("GET /matches", Chain(handlers.ListMatchesHandler(s.Results), paramsMiddleware, requireUser))
	s.Router.Handle("POST /matches", Chain(handlers.RecordMatchHandler(s.Processor), paramsMiddleware, requireUser))
	s.Router.Handle("GET /matches/{id}", Chain(handlers.GetMatchHandler(s.Results), paramsMiddleware, requireUser))
	s.Router.Handle("DELETE /matches/{id}", Chain(handlers.DeleteMatchHandler(s.Results), paramsMiddleware, requireUser))

	s.Router.Handle("POST /events/match-recorded", Chain(handlers.MatchRecordedHandler(s.Processor, s.pubsub), paramsMiddleware, verifyPush))
	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Processor, s.Notifier), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/head-to-head", Chain(handlers.HeadToHeadCommandHandler(s.Processor, s.Users, s.Notifier), paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID(s.Router).ServeHTTP(w, r)
}
