package actions

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tabletpl/css"
	"tabletpl/state"
	"tabletpl/templates"
)

// Validate implements "validate" command: every problem in every source is
// reported, not just the first one.
func Validate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("validate")

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}
	return validateSources(ctx, cmd.Args().Slice(), env, log)
}

func validateSources(ctx context.Context, sources []string, env *state.LocalEnv, log *zap.Logger) error {
	var failed int
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := readDocument(src, env.Rpt)
		if err == nil {
			err = validateDocument(doc)
		}
		if err != nil {
			failed++
			for _, e := range multierr.Errors(err) {
				log.Error("Document is invalid", zap.String("source", src), zap.Error(e))
			}
			continue
		}
		log.Info("Document is valid", zap.String("source", src), zap.Int("templates", len(doc)))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed validation", failed, len(sources))
	}
	return nil
}

// validateDocument checks document the same way store and compiler would.
func validateDocument(doc templates.Document) error {
	return css.Validate(doc.Pruned())
}
