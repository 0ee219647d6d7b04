package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const manifestName = "rpncalc.toml"

// settings are the effective options: flags over manifest over defaults.
type settings struct {
	Format    string
	Precision int
	Jobs      int
	Cache     bool

	Manifest string // path of the manifest that contributed, if any
}

func defaultSettings() settings {
	return settings{Format: "pretty", Precision: -1, Jobs: 0, Cache: true}
}

type manifestConfig struct {
	Output outputConfig `toml:"output"`
	Batch  batchConfig  `toml:"batch"`
}

type outputConfig struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
}

type batchConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// applyManifest decodes path over s. Only keys present in the file change s.
func applyManifest(path string, s settings) (settings, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return s, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return s, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("output", "format") {
		s.Format = cfg.Output.Format
	}
	if meta.IsDefined("output", "precision") {
		s.Precision = cfg.Output.Precision
	}
	if meta.IsDefined("batch", "jobs") {
		s.Jobs = cfg.Batch.Jobs
	}
	if meta.IsDefined("batch", "cache") {
		s.Cache = cfg.Batch.Cache
	}
	s.Manifest = path
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s settings) validate() error {
	switch s.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid format %q (expected pretty|json)", s.Format)
	}
	if s.Precision < -1 {
		return fmt.Errorf("invalid precision %d (expected -1 or more)", s.Precision)
	}
	if s.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d (expected 0 or more)", s.Jobs)
	}
	return nil
}

// resolveSettings layers the manifest (explicit --config or discovered) and
// the command's changed flags over the defaults.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findManifest(".")
		if err != nil {
			return s, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if s, err = applyManifest(path, s); err != nil {
			return s, err
		}
	}

	flags := cmd.Flags()
	if flags.Lookup("format") != nil && flags.Changed("format") {
		s.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("precision") != nil && flags.Changed("precision") {
		s.Precision, _ = flags.GetInt("precision")
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		s.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("no-cache") != nil && flags.Changed("no-cache") {
		noCache, _ := flags.GetBool("no-cache")
		s.Cache = !noCache
	}
	s.Format = strings.ToLower(s.Format)
	return s, s.validate()
}
