// Package catalog loads FAQ collections from disk and keeps the current
// collection available to the rest of the application.
//
// A catalog file is a JSON, TOML or YAML document with a top-level "faqs"
// list. JSON and YAML files may also be a bare list. Fields that are
// missing from an entry are left at their zero value.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"faqdesk/internal/domain"
)

// Format identifies a catalog encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type document struct {
	FAQs []domain.FAQ `json:"faqs" toml:"faqs" yaml:"faqs"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and decodes the catalog at path
func Load(path string) (domain.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return domain.Catalog{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	entries, err := Decode(data, format)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	return domain.Catalog{Source: path, Entries: entries}, nil
}

// Decode parses catalog bytes in the given format and checks ids are unique
func Decode(data []byte, format Format) ([]domain.FAQ, error) {
	var entries []domain.FAQ

	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &entries); err != nil {
				return nil, fmt.Errorf("failed to parse JSON: %w", err)
			}
			break
		}
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		entries = doc.FAQs

	case FormatTOML:
		var doc document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		entries = doc.FAQs

	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if len(node.Content) == 0 {
			break
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&entries); err != nil {
				return nil, fmt.Errorf("failed to parse YAML: %w", err)
			}
			break
		}
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		entries = doc.FAQs

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := checkUniqueIDs(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func checkUniqueIDs(entries []domain.FAQ) error {
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
