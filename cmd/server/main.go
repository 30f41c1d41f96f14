package main

import (
	"flag"
	"log"

	"github.com/drakos74/edu-cluster/infra/config"
	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/dataset"
	"github.com/drakos74/edu-cluster/internal/metrics"
	"github.com/drakos74/edu-cluster/internal/server"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	path := flag.String("config", config.DefaultPath, "path to the yaml configuration")
	flag.Parse()

	cfg := config.MustLoad(*path)
	if cfg.Server.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	pipeline := cluster.NewPipeline(dataset.NewCache(dataset.NewGenerator()), cfg.Clustering).
		WithMetrics(metrics.Observer)

	srv := server.NewServer(cfg.Server.Name, cfg.Server.Port).
		Add(server.Live()).
		Add(server.ClusterRoutes(pipeline)...).
		Handle("/metrics", metrics.Observer.Handler())
	if cfg.Server.Debug {
		srv = srv.Debug()
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("error running server: %s", err.Error())
	}
}
