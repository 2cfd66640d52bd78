// Package catalogimporter loads sharded compendium content from disk,
// validates it as one catalogue, and publishes it to a SQLite content store.
package catalogimporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/catalog"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/storage"
	storagesqlite "github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/storage/sqlite"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/config"
)

const manifestName = "manifest.yaml"

// Config holds configuration for the content importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

type envConfig struct {
	ContentDir string `env:"COMPENDIUM_CONTENT_DIR"`
	DBPath     string `env:"COMPENDIUM_DB_PATH"`
}

// ParseConfig parses environment defaults and CLI flags into a Config.
// Flags take precedence over environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Dir:    envCfg.ContentDir,
		DBPath: envCfg.DBPath,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "compendium-content.db")
	}

	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory containing the content manifest and shard files")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}

	return cfg, nil
}

// manifest names the shard files making up one content catalogue. Item
// shards are merged in the listed order.
type manifest struct {
	Items []string `yaml:"items"`
	Feats string   `yaml:"feats"`
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}

	m, err := readManifest(dir)
	if err != nil {
		return err
	}
	if len(m.Items) == 0 && m.Feats == "" {
		return fmt.Errorf("manifest lists no content files")
	}

	itemShards := make([][]domain.Item, 0, len(m.Items))
	for _, name := range m.Items {
		shard, err := readShard[domain.Item](dir, name)
		if err != nil {
			return fmt.Errorf("read item shard %s: %w", name, err)
		}
		itemShards = append(itemShards, shard)
	}

	var feats []domain.Feat
	if m.Feats != "" {
		feats, err = readShard[domain.Feat](dir, m.Feats)
		if err != nil {
			return fmt.Errorf("read feats %s: %w", m.Feats, err)
		}
	}

	built, err := catalog.Build(itemShards, feats)
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d item(s) and %d feat(s)\n", len(built.Items()), len(built.Feats()))
		return err
	}

	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	now := time.Now().UTC()
	if err := publish(ctx, store, built, now); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "imported %d item(s) and %d feat(s) into %s\n", len(built.Items()), len(built.Feats()), cfg.DBPath)
	return err
}

func readManifest(dir string) (manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// readShard decodes one JSON array of content records. Unknown fields
// are rejected so shard typos surface at import time.
func readShard[T any](dir, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var records []T
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("decode %s: trailing data after JSON array", name)
	}
	return records, nil
}

func publish(ctx context.Context, store storage.ContentStore, built *catalog.Catalog, now time.Time) error {
	for position, item := range built.Items() {
		record := storage.ItemRecord{
			Item:      item,
			Position:  position,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutItem(ctx, record); err != nil {
			return fmt.Errorf("publish item %s: %w", item.ID, err)
		}
	}
	for position, feat := range built.Feats() {
		record := storage.FeatRecord{
			Feat:      feat,
			Position:  position,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutFeat(ctx, record); err != nil {
			return fmt.Errorf("publish feat %s: %w", feat.ID, err)
		}
	}
	return nil
}
