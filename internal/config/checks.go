package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/pflag"
)

// resolveSrc resolves the single positional argument naming the source
// header to convert. Exactly one is required.
func resolveSrc(fs *pflag.FlagSet) (string, error) {
	args := fs.Args()
	if len(args) != 1 {
		return "", errors.New("exactly one source header path is required")
	}
	return args[0], nil
}

// defaultCacheDBPath is the --cache-db default: a per-user cache
// directory, falling back to the current directory if the user's cache
// directory can't be resolved.
func defaultCacheDBPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dearbind-cache.db"
	}
	return filepath.Join(dir, "dearbind", "cache.db")
}

// defaultOutputPath derives the --output default from src: its basename
// with the extension stripped, so ImGui.h becomes ./ImGui.
func defaultOutputPath(src string) string {
	base := filepath.Base(src)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// ResolveTemplateFile looks up "<basename-of-src>-header.cpp" under
// cfg.TemplateDir. If the exact name isn't present it falls back to a
// doublestar glob match (the template is sometimes nested one directory
// down, e.g. under a per-platform subfolder), matching the filename only.
func ResolveTemplateFile(cfg *Config) (string, bool, error) {
	if cfg.TemplateDir == "" {
		return "", false, nil
	}
	want := defaultOutputPath(cfg.Src) + "-header.cpp"

	exact := filepath.Join(cfg.TemplateDir, want)
	if _, err := os.Stat(exact); err == nil {
		return exact, true, nil
	}

	matches, err := doublestar.Glob(os.DirFS(cfg.TemplateDir), "**/"+want)
	if err != nil {
		return "", false, err
	}
	if len(matches) == 0 {
		return "", false, nil
	}
	return filepath.Join(cfg.TemplateDir, matches[0]), true, nil
}
