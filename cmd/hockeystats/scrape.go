package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"hockey-stats-pipeline/config"
	"hockey-stats-pipeline/models"
	"hockey-stats-pipeline/pipeline"
	"hockey-stats-pipeline/scraper"
)

var (
	scrapeStartURL    string
	scrapeOutput      string
	scrapeFormat      string
	scrapeMetricsAddr string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Crawl the paginated team statistics table and write records to disk",
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeStartURL, "start-url", "", "First listing page to crawl")
	scrapeCmd.Flags().StringVar(&scrapeOutput, "output", "", "Output file path")
	scrapeCmd.Flags().StringVar(&scrapeFormat, "format", "", "Output format: csv, jsonl, or dual")
	scrapeCmd.Flags().StringVar(&scrapeMetricsAddr, "metrics-addr", "", "Prometheus metrics listen address (e.g. :9090)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	if err := applyScrapeOverrides(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("starting scrape",
		slog.String("start_url", cfg.StartURL),
		slog.String("output", cfg.OutputFile),
		slog.String("format", cfg.OutputFormat),
	)

	orchestrator, err := scraper.NewOrchestrator(cfg)
	if err != nil {
		return fmt.Errorf("initialising scraper: %w", err)
	}

	writer, err := createWriter(cfg.OutputFormat, cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			slog.Error("close writer", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(orchestrator.Metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	sink := pipeline.NewSink(writer)
	result, runErr := orchestrator.Run(ctx, sink)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		cancel()
	}

	if runErr != nil {
		slog.Error("scraping aborted",
			slog.String("url", result.FailedURL),
			slog.Any("error", runErr),
		)
		return runErr
	}

	if err := writer.Validate(); err != nil {
		return fmt.Errorf("output validation: %w", err)
	}

	printSummary(result, sink, cfg.OutputFile)
	return nil
}

// applyScrapeOverrides layers env vars and flags over the loaded config.
// Flags win over env vars, env vars win over the file/defaults.
func applyScrapeOverrides(cfg *config.Config) error {
	if value, ok := config.EnvString("HOCKEY_START_URL"); ok {
		cfg.StartURL = value
	}
	if value, ok := config.EnvString("HOCKEY_OUTPUT"); ok {
		cfg.OutputFile = value
	}
	if value, ok := config.EnvString("HOCKEY_METRICS_ADDR"); ok {
		cfg.MetricsAddr = value
	}
	if value, ok, err := config.EnvDuration("HOCKEY_TIMEOUT"); err != nil {
		return fmt.Errorf("invalid HOCKEY_TIMEOUT: %w", err)
	} else if ok {
		cfg.Timeout = config.Duration(value)
	}

	if scrapeStartURL != "" {
		cfg.StartURL = scrapeStartURL
	}
	if scrapeOutput != "" {
		cfg.OutputFile = scrapeOutput
	}
	if scrapeFormat != "" {
		cfg.OutputFormat = strings.ToLower(scrapeFormat)
	}
	if scrapeMetricsAddr != "" {
		cfg.MetricsAddr = scrapeMetricsAddr
	}
	return nil
}

func createWriter(format, filename string) (pipeline.RecordWriter, error) {
	switch format {
	case "jsonl":
		return pipeline.NewJSONLWriter(filename)
	case "csv":
		return pipeline.NewCSVWriter(filename)
	case "dual":
		jsonlFilename := strings.TrimSuffix(filename, ".csv") + ".jsonl"
		return pipeline.NewDualWriter(filename, jsonlFilename)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func printSummary(result *models.ScrapeResult, sink *pipeline.Sink, outputFile string) {
	separator := "--------------------------------------------------"
	fmt.Println("\n" + separator)
	fmt.Println("Scrape complete")

	duration := result.Duration()
	recordsPerSec := 0.0
	if duration.Seconds() > 0 {
		recordsPerSec = float64(result.RecordCount) / duration.Seconds()
	}

	fmt.Printf("  Pages:         %d\n", result.PageCount)
	fmt.Printf("  Records:       %d\n", result.RecordCount)
	fmt.Printf("  Requests:      %d\n", result.RequestCount)
	if rejections := sink.Rejections(); len(rejections) > 0 {
		fmt.Printf("  Rejected:      %v\n", rejections)
	}
	fmt.Printf("  Duration:      %v\n", duration)
	fmt.Printf("  Records/sec:   %.2f\n", recordsPerSec)
	fmt.Printf("  Output file:   %s\n", outputFile)
	fmt.Println(separator)
}
