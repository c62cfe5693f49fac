package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"tabletpl/common"
)

// FormatFromPath guesses document format from file extension.
func FormatFromPath(path string) common.DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return common.DocumentFormatJson
	case ".yaml", ".yml":
		return common.DocumentFormatYaml
	default:
		return common.DocumentFormatAuto
	}
}

// Parse decodes document. Unknown fields are rejected in both formats, names
// and rules are not validated here - that is the job of the store and the
// compiler.
func Parse(data []byte, format common.DocumentFormat) (Document, error) {
	if format == common.DocumentFormatAuto {
		format = sniffFormat(data)
	}

	doc := Document{}
	switch format {
	case common.DocumentFormatJson:
		// We want to use only fields we defined so we cannot use json.Unmarshal
		// directly here
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	case common.DocumentFormatYaml:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %s: %w", format, ErrInvalidArgument)
	}
	if doc == nil {
		// explicit null
		doc = Document{}
	}
	return doc, nil
}

// Encode writes document in requested format, JSON is indented.
func Encode(w io.Writer, doc Document, format common.DocumentFormat) error {
	if doc == nil {
		doc = Document{}
	}
	switch format {
	case common.DocumentFormatAuto, common.DocumentFormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json document: %w", err)
		}
	case common.DocumentFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml document: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml document: %w", err)
		}
	default:
		return fmt.Errorf("unsupported document format %s: %w", format, ErrInvalidArgument)
	}
	return nil
}

func sniffFormat(data []byte) common.DocumentFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '{' {
		return common.DocumentFormatJson
	}
	return common.DocumentFormatYaml
}
