// Package actions implements tabletpl commands. Every command is a thin
// urfave/cli wrapper around a function doing the actual work so it could be
// tested without command line plumbing.
package actions

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/config"
	"tabletpl/templates"
)

// stdio is a path meaning standard input or output.
const stdio = "-"

// readDocument loads template document from path (or standard input) and
// records it in the debug report.
func readDocument(path string, rpt *config.Report) (templates.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(os.Stdin)
		if err == nil {
			rpt.StoreData("source/stdin", data)
		}
	} else {
		data, err = os.ReadFile(path)
		if err == nil {
			if er := rpt.StoreCopy("source/"+filepath.Base(path), path); er != nil {
				err = fmt.Errorf("unable to put source into debug report: %w", er)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read document %q: %w", path, err)
	}

	format := common.DocumentFormatAuto
	if path != stdio {
		format = templates.FormatFromPath(path)
	}
	doc, err := templates.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", path, err)
	}
	return doc, nil
}

// writeOutput writes produced content to dst, standard output when dst is
// empty. Existing files are replaced only when overwrite is requested.
func writeOutput(dst string, overwrite bool, data []byte, log *zap.Logger) error {
	if dst == "" || dst == stdio {
		_, err := os.Stdout.Write(data)
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to access output file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}

// encodeDocument serializes document in requested format.
func encodeDocument(doc templates.Document, format common.DocumentFormat) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.Encode(&buf, doc, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportFormat decides output document format: explicit yaml request,
// destination extension and finally configuration.
func exportFormat(dst string, yaml bool, cfg *config.Config) common.DocumentFormat {
	if yaml {
		return common.DocumentFormatYaml
	}
	if f := templates.FormatFromPath(dst); f != common.DocumentFormatAuto {
		return f
	}
	return cfg.Documents.Format.Document()
}
