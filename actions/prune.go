package actions

import (
	"context"
	"errors"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/state"
	"tabletpl/templates"
)

// Prune implements "prune" command: document is validated and written back
// in canonical form without empty rules and templates.
func Prune(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("prune")
	env.Overwrite = cmd.Bool("overwrite")

	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if src == "" {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	doc, err := readDocument(src, env.Rpt)
	if err != nil {
		return err
	}
	data, err := pruneDocument(doc, exportFormat(dst, cmd.Bool("yaml"), env.Cfg))
	if err != nil {
		return err
	}
	log.Debug("Document pruned", zap.Int("before", len(doc)), zap.Int("after", len(doc.Pruned())))
	return writeOutput(dst, env.Overwrite, data, log)
}

// pruneDocument checks names and rules and encodes pruned document.
func pruneDocument(doc templates.Document, format common.DocumentFormat) ([]byte, error) {
	if err := doc.CheckNames(); err != nil {
		return nil, err
	}
	pruned := doc.Pruned()
	if err := validateDocument(pruned); err != nil {
		return nil, err
	}
	return encodeDocument(pruned, format)
}
