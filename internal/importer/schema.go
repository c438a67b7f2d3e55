package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a pile group file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// GroupFile is the top-level structure of a pile group import/export file.
type GroupFile struct {
	Groups []GroupImport `json:"groups" yaml:"groups"`
}

// GroupImport is one pile group as written in a file.
type GroupImport struct {
	Name            string   `json:"name" yaml:"name"`
	PileCount       int      `json:"pile_count" yaml:"pile_count"`
	OuterDiameterMM float64  `json:"outer_diameter_mm" yaml:"outer_diameter_mm"`
	WallThicknessMM float64  `json:"wall_thickness_mm" yaml:"wall_thickness_mm"`
	PileLengthM     float64  `json:"pile_length_m" yaml:"pile_length_m"`
	PaintLengthM    *float64 `json:"paint_length_m,omitempty" yaml:"paint_length_m,omitempty"`
}

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a pile group file. Unknown fields are rejected so typos in
// column names do not silently import zeros.
func Parse(data []byte, format Format) (*GroupFile, error) {
	var file GroupFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &file, nil
}

// LoadGroupFile reads and parses a pile group file, choosing the format
// from the file extension.
func LoadGroupFile(path string) (*GroupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return file, nil
}

// Encode serialises a pile group file.
func Encode(file *GroupFile, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
