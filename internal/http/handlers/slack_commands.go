package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/ranking"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// respondWithSlackText answers a slash command with a plain ephemeral message.
func respondWithSlackText(w http.ResponseWriter, text string) {
	respondWithSlackMsg(w, slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	))
}

func writeSlackResponse(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format slack response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// LeaderboardCommandHandler serves /leaderboard. "playtomic [days]" switches to
// the club leaderboard built from Playtomic matches.
func LeaderboardCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		args := strings.Fields(strings.ToLower(r.FormValue("text")))

		var (
			standings []ranking.Standing
			err       error
		)
		if len(args) > 0 && args[0] == "playtomic" {
			days := 0
			if len(args) > 1 {
				days, _ = strconv.Atoi(args[1])
			}
			standings, err = proc.PlaytomicLeaderboard(r.Context(), days)
		} else {
			standings, err = proc.Leaderboard(r.Context())
		}
		if errors.Is(err, processor.ErrPlaytomicDisabled) {
			respondWithSlackText(w, "The Playtomic leaderboard is not set up for this workspace.")
			return
		}
		if err != nil {
			http.Error(w, "Failed to build leaderboard", http.StatusInternalServerError)
			log.FromContext(r.Context()).Error("Failed to build leaderboard", "error", err)
			return
		}

		msg, err := notifier.FormatLeaderboardResponse(standings)
		writeSlackResponse(w, msg, err)
	}
}

// HeadToHeadCommandHandler serves /head-to-head <name> <name>.
func HeadToHeadCommandHandler(proc *processor.Processor, users account.Store, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		names := strings.Fields(r.FormValue("text"))
		if len(names) != 2 {
			respondWithSlackText(w, "Usage: `/head-to-head <player> <player>`")
			return
		}
		log.FromContext(r.Context()).Info("Received head-to-head command", "player1", names[0], "player2", names[1])

		directory, err := users.ListNamedUsers(r.Context())
		if err != nil {
			http.Error(w, "Failed to get users", http.StatusInternalServerError)
			log.FromContext(r.Context()).Error("Failed to list users", "error", err)
			return
		}
		ids := make([]string, 2)
		for i, name := range names {
			for _, u := range directory {
				if strings.EqualFold(u.Name, name) {
					ids[i] = u.ID
					break
				}
			}
			if ids[i] == "" {
				respondWithSlackText(w, fmt.Sprintf("Sorry, I couldn't find a player called *%s*.", name))
				return
			}
		}

		totals, _, err := proc.HeadToHead(r.Context(), ids[0], ids[1])
		if err != nil {
			respondWithSlackText(w, fmt.Sprintf("Can't compare those two: %s", err))
			return
		}
		msg, err := notifier.FormatHeadToHeadResponse(names[0], names[1], totals)
		writeSlackResponse(w, msg, err)
	}
}
