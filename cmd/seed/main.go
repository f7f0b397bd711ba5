package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"quotes-api/internal/config"
	"quotes-api/internal/seed"
	"quotes-api/pkg/server"
)

func main() {
	var (
		seedFile = flag.String("file", "./data/quotes.json", "JSON file with an array of quote payloads")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.StandardLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	importer := seed.NewImporter(container.QuoteService, logger)

	result, err := importer.ImportFile(context.Background(), *seedFile)
	if err != nil {
		logger.WithError(err).Fatal("Seed import failed")
	}

	if result.Failed > 0 {
		logger.WithField("failed", result.Failed).Warn("Some quotes were skipped")
	}
}
