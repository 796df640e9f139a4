// Package config centralizes the Viper-backed configuration the build
// and serve subcommands share, per SPEC_FULL.md §6's Environment
// section.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting either subcommand reads. Zero values are
// valid defaults where noted.
type Config struct {
	// Bucket is the GCS bucket "build" uploads block files, posting_locs
	// files and descriptors to. When empty, "build" writes to local disk
	// only; "serve" does not read it.
	Bucket string
	// BaseDir is the local scratch/cache directory block files and
	// descriptors are read from and written to.
	BaseDir string
	// ShardCount is the number of term buckets; 0 means
	// posting.DefaultShardCount.
	ShardCount int
	// ListenAddr is the HTTP listen address for "serve".
	ListenAddr string
	// DocsPath points at the newline-delimited JSON corpus file "build"
	// reads documents from.
	DocsPath string
	// CheckpointPath is the local path for the build's embedded
	// checkpoint database.
	CheckpointPath string
}

// Load reads configuration from (in ascending priority) defaults, a
// config file at configPath (if non-empty and present), and
// WIKISEARCH_-prefixed environment variables, mirroring the teacher
// CLI's envDefault convention but through Viper so flags, file, and env
// all compose.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("wikisearch")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_dir", "./data")
	v.SetDefault("shard_count", 0)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("checkpoint_path", "./data/checkpoint.kv")

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	return &Config{
		Bucket:         v.GetString("bucket"),
		BaseDir:        v.GetString("base_dir"),
		ShardCount:     v.GetInt("shard_count"),
		ListenAddr:     v.GetString("listen_addr"),
		DocsPath:       v.GetString("docs_path"),
		CheckpointPath: v.GetString("checkpoint_path"),
	}, nil
}
