package actions

import (
	"context"
	"errors"
	"os"

	cli "github.com/urfave/cli/v3"

	"tabletpl/state"
)

// Inspect implements "inspect" command printing document tree.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if src == "" {
		return errors.New("no input source has been specified")
	}
	doc, err := readDocument(src, env.Rpt)
	if err != nil {
		return err
	}
	dump := doc.String()
	env.Rpt.StoreData("inspect.txt", []byte(dump))
	_, err = os.Stdout.WriteString(dump)
	return err
}
