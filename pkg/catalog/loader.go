package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

//go:embed bundle/*.yaml
var embeddedBundle embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// BundleFS exposes the embedded template bundle so callers can extend or copy
// it.
func BundleFS() fs.FS {
	sub, err := fs.Sub(embeddedBundle, "bundle")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the catalog built from the embedded bundle.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := LoadFS(BundleFS())
		if err != nil {
			panic(fmt.Errorf("catalog: embedded bundle: %w", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

type bundleFile struct {
	Templates []model.ElementTemplate `json:"templates" yaml:"templates"`
}

// LoadFS walks fsys and builds a catalog from every JSON/YAML bundle it finds.
// Files are visited in lexical order and their templates concatenated; a type
// tag defined twice across files is an error.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return New()
	}

	var templates []model.ElementTemplate
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isBundleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := parseBundle(data, path)
		if err != nil {
			return err
		}
		templates = append(templates, doc.Templates...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(templates...)
}

// LoadFile builds a catalog from a single bundle file, or from every bundle in
// a directory.
func LoadFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}
	if !isBundleFile(path) {
		return nil, fmt.Errorf("catalog: %s is not a .json, .yaml or .yml file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	doc, err := parseBundle(data, path)
	if err != nil {
		return nil, err
	}
	return New(doc.Templates...)
}

func parseBundle(data []byte, source string) (bundleFile, error) {
	var doc bundleFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return bundleFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = bundleFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return bundleFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func isBundleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
