package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/drakos74/edu-cluster/infra/config"
	"github.com/drakos74/edu-cluster/internal/chart"
	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/dataset"
	"github.com/drakos74/edu-cluster/internal/format"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {
	path := flag.String("config", "", "path to the yaml configuration, built-in defaults if empty")
	k := flag.Int("k", 0, "number of clusters, the configured default if 0")
	seed := flag.Int64("seed", dataset.DefaultSeed, "seed for the dataset and the cluster initialization")
	scatter := flag.String("scatter", "", "html file to write the scatter chart to")
	verbose := flag.Bool("v", false, "log every run")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *path != "" {
		cfg = config.MustLoad(*path)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Clustering.Seed = *seed
		}
	})
	if *k == 0 {
		*k = cfg.Clustering.K
	}
	if err := cfg.Clustering.Check(*k); err != nil {
		log.Fatalf("invalid cluster count: %s", err.Error())
	}

	pipeline := cluster.NewPipeline(dataset.NewGenerator(), cfg.Clustering)

	fmt.Println("dataset")
	format.Dataset(os.Stdout, pipeline.Dataset())

	result, err := pipeline.Run(*k)
	if err != nil {
		log.Fatalf("error running clustering: %s", err.Error())
	}
	format.Result(os.Stdout, result)

	if *scatter != "" {
		if err := writeScatter(*scatter, result); err != nil {
			log.Fatalf("error writing scatter chart: %s", err.Error())
		}
		fmt.Printf("scatter chart written to %s\n", *scatter)
	}
}

func writeScatter(path string, result *cluster.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file %s: %w", path, err)
	}
	defer f.Close()
	return chart.Render(f, chart.Scatter(result, chart.DefaultAxes))
}
