package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aosen/wikisearch/index"
	"github.com/aosen/wikisearch/internal/config"
	"github.com/aosen/wikisearch/internal/logging"
	"github.com/aosen/wikisearch/store"
)

func buildCmd(configPath *string) *cobra.Command {
	var docsPath string

	c := &cobra.Command{
		Use:   "build",
		Short: "Build the body, title, and anchor indices from a corpus file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), *configPath, docsPath)
		},
	}
	c.Flags().StringVar(&docsPath, "docs", "", "path to the newline-delimited JSON corpus file (overrides config)")
	return c
}

func runBuild(ctx context.Context, configPath, docsPathFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("cli: load config: %w", err)
	}
	if docsPathFlag != "" {
		cfg.DocsPath = docsPathFlag
	}
	if cfg.DocsPath == "" {
		return fmt.Errorf("cli: missing --docs (or docs_path in config)")
	}

	logger, err := logging.New(false)
	if err != nil {
		return fmt.Errorf("cli: build logger: %w", err)
	}
	defer logger.Sync()

	bodyDocs, titleDocs, anchors, err := loadCorpus(cfg.DocsPath)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded",
		zap.Int("documents", len(bodyDocs)),
		zap.Int("anchor_occurrences", len(anchors)))

	var objStore store.ObjectStore
	if cfg.Bucket != "" {
		gcs, err := store.NewGCSStore(ctx, cfg.Bucket)
		if err != nil {
			return fmt.Errorf("cli: connect object store: %w", err)
		}
		defer gcs.Close()
		objStore = gcs
	}

	checkpoint, err := store.OpenCheckpoint(cfg.CheckpointPath)
	if err != nil {
		return fmt.Errorf("cli: open checkpoint: %w", err)
	}
	defer checkpoint.Close()

	fields := []struct {
		name    string
		buildFn func() (*index.Descriptor, error)
	}{
		{"body", func() (*index.Descriptor, error) {
			return index.BuildBody(bodyDocs, fieldOpts(cfg, objStore, checkpoint, logger, "postings_body"))
		}},
		{"title", func() (*index.Descriptor, error) {
			return index.BuildTitle(titleDocs, fieldOpts(cfg, objStore, checkpoint, logger, "postings_title"))
		}},
		{"anchor", func() (*index.Descriptor, error) {
			return index.BuildAnchor(anchors, fieldOpts(cfg, objStore, checkpoint, logger, "postings_anchor"))
		}},
	}

	for _, f := range fields {
		logger.Info("building field", zap.String("field", f.name))
		if err := os.MkdirAll(filepath.Join(cfg.BaseDir, "postings_"+f.name), 0o755); err != nil {
			return fmt.Errorf("cli: mkdir field scratch dir: %w", err)
		}
		desc, err := f.buildFn()
		if err != nil {
			return fmt.Errorf("cli: build %s: %w", f.name, err)
		}
		if err := saveDescriptor(cfg, objStore, f.name, desc); err != nil {
			return err
		}
	}

	logger.Info("build complete")
	return nil
}

func fieldOpts(cfg *config.Config, objStore store.ObjectStore, checkpoint *store.Checkpoint, logger *zap.Logger, remoteFolder string) index.BuildOptions {
	return index.BuildOptions{
		ShardCount:   cfg.ShardCount,
		BaseDir:      filepath.Join(cfg.BaseDir, remoteFolder),
		RemoteFolder: remoteFolder,
		Store:        objStore,
		Checkpoint:   checkpoint,
		Logger:       logger,
	}
}

func saveDescriptor(cfg *config.Config, objStore store.ObjectStore, field string, desc *index.Descriptor) error {
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return fmt.Errorf("cli: mkdir %s: %w", cfg.BaseDir, err)
	}
	path := filepath.Join(cfg.BaseDir, field+".descriptor")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: create descriptor %s: %w", path, err)
	}
	defer f.Close()
	if err := desc.Save(f); err != nil {
		return err
	}
	if objStore != nil {
		if err := objStore.Upload(path, field+"/descriptor.gob"); err != nil {
			return fmt.Errorf("cli: upload %s descriptor: %w", field, err)
		}
	}
	return nil
}
