package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/database"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/results"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	seedPassword = "padel123"
	numMatches   = 200
)

var demoPlayers = []string{"ana", "bea", "carlos", "dani", "elena", "fer"}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "padel.db"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

// noTokens satisfies account.TokenIssuer; the seeder never signs anyone in.
type noTokens struct{}

func (noTokens) Issue(string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("not supported")
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()
	ctx := context.Background()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	users := account.NewStore(db)
	accounts := account.NewService(users, account.NewBcryptHasher(0), noTokens{}, account.LogMailer{}, metrics.NewService(prometheus.NewRegistry()), "")
	store := results.NewStore(db)

	ids := make([]string, 0, len(demoPlayers))
	for _, name := range demoPlayers {
		email := name + "@example.com"
		user, err := accounts.Register(ctx, account.Registration{Name: name, Email: email, Password: seedPassword, ConfirmPassword: seedPassword})
		if errors.Is(err, account.ErrEmailInUse) || errors.Is(err, account.ErrNameInUse) {
			existing, _, getErr := users.GetUserByEmail(ctx, email)
			if getErr != nil {
				log.Fatalf("Player %s exists but could not be loaded: %s", name, getErr)
			}
			user = existing
		} else if err != nil {
			log.Fatalf("Failed to create player %s: %s", name, err)
		}
		ids = append(ids, user.ID)
	}
	log.Info("Ensured demo players exist.", "players", strings.Join(demoPlayers, ","), "password", seedPassword)

	log.Info("Preparing to insert demo matches...", "total", numMatches)
	startTime := time.Now()
	for i := 0; i < numMatches; i++ {
		p1 := rand.Intn(len(ids))
		p2 := rand.Intn(len(ids) - 1)
		if p2 >= p1 {
			p2++
		}
		r := results.Result{
			ID:        uuid.NewString(),
			Player1ID: ids[p1],
			Player2ID: ids[p2],
			ScoreA:    rand.Intn(7),
			ScoreB:    rand.Intn(7),
			PlayedAt:  time.Now().UTC().Add(-time.Duration(rand.Intn(90*24)) * time.Hour).Truncate(time.Second),
		}
		if err := store.Record(ctx, r); err != nil {
			log.Fatalf("Failed to insert match %d: %s", i, err)
		}
		if (i+1)%50 == 0 {
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	log.Info("Successfully inserted all demo matches.", "duration", time.Since(startTime), "summary", fmt.Sprintf("%d players, %d matches", len(ids), numMatches))
}
