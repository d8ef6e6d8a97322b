package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"docsum/internal/api"
	"docsum/internal/backend/cluster"
	"docsum/internal/backend/local"
	"docsum/internal/config"
	"docsum/internal/domain"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	localPool := local.NewPool(cfg.Backend.LocalWorkers)

	var clusterPool domain.Backend
	if cfg.Backend.Cluster != nil && len(cfg.Backend.Cluster.Workers) > 0 {
		clusterPool, err = cluster.New(cluster.Config{
			Workers: cfg.Backend.Cluster.Workers,
			Timeout: time.Duration(cfg.Backend.Cluster.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("cluster backend init failed: %v", err)
		}
		log.Printf("cluster backend configured with %d workers", len(cfg.Backend.Cluster.Workers))
	}

	handler := api.NewHandler(cfg, localPool, clusterPool)
	router := api.NewRouter(handler)

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
