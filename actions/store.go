package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/config"
	"tabletpl/state"
	"tabletpl/storage"
)

// StoreSave implements "store save NAME SOURCE".
func StoreSave(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("store")

	name, src := cmd.Args().Get(0), cmd.Args().Get(1)
	if name == "" || src == "" {
		return errors.New("document name and source must be specified")
	}
	doc, err := readDocument(src, env.Rpt)
	if err != nil {
		return err
	}
	if err := validateDocument(doc); err != nil {
		return fmt.Errorf("refusing to store invalid document: %w", err)
	}

	repo, err := env.Storage(ctx)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, name, doc); err != nil {
		return err
	}
	log.Info("Document stored", zap.String("name", name), zap.String("source", src))
	return nil
}

// StoreLoad implements "store load NAME [DESTINATION]".
func StoreLoad(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("store")

	env.Overwrite = cmd.Bool("overwrite")

	name, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if name == "" {
		return errors.New("document name must be specified")
	}
	repo, err := env.Storage(ctx)
	if err != nil {
		return err
	}
	doc, err := repo.Load(ctx, name)
	if err != nil {
		return err
	}
	format := exportFormat(dst, cmd.Bool("yaml"), env.Cfg)
	data, err := encodeDocument(doc, format)
	if err != nil {
		return err
	}
	return writeOutput(loadDestination(dst, name, format), env.Overwrite, data, log)
}

// StoreList implements "store list".
func StoreList(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)

	repo, err := env.Storage(ctx)
	if err != nil {
		return err
	}
	entries, err := repo.List(ctx)
	if err != nil {
		return err
	}
	return listEntries(os.Stdout, entries)
}

// StoreDelete implements "store delete NAME".
func StoreDelete(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("store")

	name := cmd.Args().Get(0)
	if name == "" {
		return errors.New("document name must be specified")
	}
	repo, err := env.Storage(ctx)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, name); err != nil {
		return err
	}
	log.Info("Document deleted", zap.String("name", name))
	return nil
}

// loadDestination places document into directory dst under its own name.
func loadDestination(dst, name string, format common.DocumentFormat) string {
	if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
		return dst
	}
	ext := ".json"
	if format == common.DocumentFormatYaml {
		ext = ".yaml"
	}
	return filepath.Join(dst, config.SafeFileName(name)+ext)
}

func listEntries(w io.Writer, entries []storage.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTEMPLATES\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Name, e.Templates, e.Updated.Local().Format(time.DateTime))
	}
	return tw.Flush()
}
