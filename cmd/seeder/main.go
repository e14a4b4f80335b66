package main

import (
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/arenamatch/arenamatch/internal/database"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

var demoRoster = []string{
	"Ava Martinez",
	"Ben Okafor",
	"Chiara Rossi",
	"Daan Visser",
	"Elena Petrova",
	"Felix Braun",
}

func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}
	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), migrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := tournament.New(db)

	players := make([]tournament.Player, 0, len(demoRoster))
	for _, name := range demoRoster {
		player, err := store.AddPlayer(name)
		if err != nil {
			log.Fatalf("Failed to add player %s: %s", name, err)
		}
		players = append(players, player)
	}
	log.Info("Seeded roster", "players", len(players))

	// A handful of completed matches so the standings and commentary have
	// something to chew on, plus a couple left pending.
	completed := 0
	pending := 0
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if rand.Intn(3) == 0 {
				continue
			}
			match, err := store.ScheduleMatch(players[i].ID, players[j].ID)
			if err != nil {
				log.Fatalf("Failed to schedule match: %s", err)
			}
			if rand.Intn(4) == 0 {
				pending++
				continue
			}
			if err := store.RecordResult(match.ID, rand.Intn(5), rand.Intn(5)); err != nil {
				log.Fatalf("Failed to record result: %s", err)
			}
			completed++
		}
	}

	log.Info("Seeding complete", "completed_matches", completed, "pending_matches", pending)
}
