package main

import (
	"os"

	"bazaraki-deals/config"
	"bazaraki-deals/export"
	"bazaraki-deals/models"
	"bazaraki-deals/pricing"
	"bazaraki-deals/scraper/bazaraki"
	"bazaraki-deals/services"
	"bazaraki-deals/storage"
	"bazaraki-deals/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Bazaraki Electronics Deal Finder starting ===")
	logger.Info("Config — categories: %d | pages/category: %d | min deal: %.1f%% | delay: %dms",
		len(cfg.Categories), cfg.MaxPagesPerCategory, cfg.MinDealPercent, cfg.RequestDelayMs)

	// A dead database never aborts a scan: fall back to the in-memory store
	// so reports are still produced.
	var store storage.DealStore
	store, err := storage.NewPostgresStore(cfg.DSN())
	if err != nil {
		logger.Warn("PostgreSQL unavailable: %v", err)
		logger.Warn("Continuing with in-memory store — results will not persist across runs")
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	scraper := bazaraki.New(cfg, logger)
	rawListings, err := scraper.Scrape()
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}

	cleaner := services.NewCleaner(logger)
	listings := cleaner.Clean(rawListings)

	table := pricing.DefaultTable()
	analyzer := services.NewAnalyzer(table, pricing.NewScorer(cfg.MinDealPercent), store, logger)
	deals := analyzer.Analyze(listings)

	exporter := export.NewExporter(cfg.OutputDir, cfg.ExportCSV, cfg.ExportJSON, cfg.ExportHTML, logger)
	artifacts, err := exporter.Export(deals)
	if err != nil {
		logger.Error("Some exports failed: %v", err)
	}

	// The summary is printed on every run, including partial-failure runs.
	summary := &models.ScanSummary{
		ListingsFetched:  len(rawListings),
		ListingsCleaned:  len(listings),
		DealsFound:       len(deals),
		ArtifactsWritten: artifacts,
	}
	services.NewSummaryService(logger).Print(summary, deals)
}
