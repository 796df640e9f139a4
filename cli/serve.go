package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aosen/wikisearch/httpapi"
	"github.com/aosen/wikisearch/index"
	"github.com/aosen/wikisearch/internal/config"
	"github.com/aosen/wikisearch/internal/logging"
	"github.com/aosen/wikisearch/pagerank"
	"github.com/aosen/wikisearch/query"
	"github.com/aosen/wikisearch/titles"
)

func serveCmd(configPath *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Load the built indices and serve search queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
	return c
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("cli: load config: %w", err)
	}

	logger, err := logging.New(false)
	if err != nil {
		return fmt.Errorf("cli: build logger: %w", err)
	}
	defer logger.Sync()

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return fmt.Errorf("cli: load catalog: %w", err)
	}

	metrics := query.NewMetrics(prometheus.DefaultRegisterer)
	engine := query.NewEngine(catalog, logger, metrics)
	server := httpapi.NewServer(engine, logger)

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("serving", zap.String("addr", cfg.ListenAddr))
	return httpSrv.ListenAndServe()
}

// loadCatalog opens every field descriptor plus the auxiliary maps off
// local disk at cfg.BaseDir: {field}.descriptor files, pagerank.csv.gz,
// titles.gob and pageviews.gob directly under it, with each field's
// block files under postings_{field}/. A
// missing or unparsable descriptor is an IndexLoadFailure per §7: fatal,
// so the caller never starts serving a half-loaded catalog.
func loadCatalog(cfg *config.Config, logger *zap.Logger) (*query.Catalog, error) {
	body, err := loadField(cfg.BaseDir, "body")
	if err != nil {
		return nil, err
	}
	title, err := loadField(cfg.BaseDir, "title")
	if err != nil {
		return nil, err
	}
	anchor, err := loadField(cfg.BaseDir, "anchor")
	if err != nil {
		return nil, err
	}

	pr := pagerank.Map{}
	if err := loadOptionalGzipCSV(filepath.Join(cfg.BaseDir, "pagerank.csv.gz"), pr); err != nil {
		logger.Warn("pagerank map not loaded, boosts will be zero", zap.Error(err))
	}

	titleMap, err := loadOptionalTitleMap(filepath.Join(cfg.BaseDir, "titles.gob"))
	if err != nil {
		logger.Warn("title map not loaded, titles will show as unknown", zap.Error(err))
		titleMap = titles.Map{}
	}

	pageViews, err := loadOptionalPageViews(filepath.Join(cfg.BaseDir, "pageviews.gob"))
	if err != nil {
		logger.Warn("pageview map not loaded, pageviews will read as zero", zap.Error(err))
		pageViews = titles.PageViews{}
	}

	return &query.Catalog{
		Body:      body,
		Title:     title,
		Anchor:    anchor,
		PageRank:  pr,
		PageViews: pageViews,
		Titles:    titleMap,
	}, nil
}

func loadField(baseDir, name string) (query.FieldIndex, error) {
	path := filepath.Join(baseDir, name+".descriptor")
	f, err := os.Open(path)
	if err != nil {
		return query.FieldIndex{}, fmt.Errorf("cli: open %s descriptor: %w", name, err)
	}
	defer f.Close()

	desc, err := index.LoadDescriptor(f)
	if err != nil {
		return query.FieldIndex{}, fmt.Errorf("cli: load %s descriptor: %w", name, err)
	}
	return query.FieldIndex{Descriptor: desc, BaseDir: filepath.Join(baseDir, "postings_"+name)}, nil
}

func loadOptionalGzipCSV(path string, dst pagerank.Map) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pagerank.Load(f, dst)
}

func loadOptionalTitleMap(path string) (titles.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return titles.LoadMap(f)
}

func loadOptionalPageViews(path string) (titles.PageViews, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return titles.LoadPageViews(f)
}
