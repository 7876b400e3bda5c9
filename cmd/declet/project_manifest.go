package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const noDecletTomlMessage = "no declet.toml found\nplease specify the files explicitly, e.g.:\n  declet check path/to/file.decl"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Check   checkConfig   `toml:"check"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type checkConfig struct {
	Sources []string `toml:"sources"`
}

func findDecletToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "declet.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findDecletToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("check") || len(cfg.Check.Sources) == 0 {
		return projectConfig{}, fmt.Errorf("%s: missing [check].sources", path)
	}
	return cfg, nil
}

// resolveCheckTargets turns command-line arguments or manifest sources into
// the flat, sorted list of .decl files to analyze.
func resolveCheckTargets(args []string) ([]string, error) {
	if len(args) > 0 {
		return expandSources(".", args)
	}

	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(noDecletTomlMessage)
	}
	return expandSources(manifest.Root, manifest.Config.Check.Sources)
}

func expandSources(root string, sources []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, src := range sources {
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, filepath.FromSlash(src))
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat source %q: %w", src, err)
		}
		if !info.IsDir() {
			if filepath.Ext(path) != ".decl" {
				return nil, fmt.Errorf("%s: not a .decl file", path)
			}
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".decl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk source %q: %w", src, err)
		}
	}

	sort.Strings(out)
	return out, nil
}
