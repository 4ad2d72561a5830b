package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (postgres, redis) behind ports and starts the
// HTTP server around the planning pipeline.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/cities.json")
	configPath := os.Getenv("PLANNER_CONFIG")

	plannerCfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed the city catalog on startup for local runs.
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("No seed file at %s (skipping catalog seed)", seedPath)
	}

	var repo ports.CityRepository = repositories.NewPostgresCityRepository(conn)

	// Redis is optional: without it, catalog lookups go straight to postgres.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		repo = repositories.NewCachedCityRepository(repo, cache.NewRedisCityCache(client, 24*time.Hour))
		log.Printf("City cache enabled addr=%s", addr)
	}

	metrics.RegisterDefault()
	router := api.NewRouter(repo, plannerCfg, geo.NewKeywordIslandClassifier())

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
