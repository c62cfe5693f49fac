package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/config"
	"tabletpl/css"
	"tabletpl/misc"
	"tabletpl/state"
	"tabletpl/templates"
)

// CompileOptions controls stylesheet production.
type CompileOptions struct {
	// Source is used in stylesheet header only.
	Source string
	// Templates limits compiled templates, overrides configuration.
	Templates []string
	NoHeader  bool
}

// Compile implements "compile" command.
func Compile(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")
	env.Overwrite = cmd.Bool("overwrite")

	var (
		doc  templates.Document
		err  error
		opts = CompileOptions{
			Templates: cmd.StringSlice("template"),
			NoHeader:  cmd.Bool("no-header"),
		}
		dst = cmd.Args().Get(1)
	)

	if stored := cmd.String("stored"); stored != "" {
		repo, err := env.Storage(ctx)
		if err != nil {
			return err
		}
		if doc, err = repo.Load(ctx, stored); err != nil {
			return err
		}
		if data, err := encodeDocument(doc, common.DocumentFormatJson); err == nil {
			env.Rpt.StoreData("stored/"+config.SafeFileName(stored)+".json", data)
		}
		opts.Source = "storage:" + stored
		// there is no source argument
		dst = cmd.Args().Get(0)
	} else {
		src := cmd.Args().Get(0)
		if src == "" {
			return errors.New("no input source has been specified")
		}
		if doc, err = readDocument(src, env.Rpt); err != nil {
			return err
		}
		opts.Source = src
	}

	log.Info("Compiling templates", zap.String("source", opts.Source), zap.Int("templates", len(doc)))
	defer func(start time.Time) {
		log.Debug("Compilation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	out, err := compileDocument(doc, env.Cfg, opts, log)
	if err != nil {
		return err
	}
	if out != "" {
		out += "\n"
	}
	env.Rpt.StoreData("stylesheet.css", []byte(out))
	return writeOutput(dst, env.Overwrite, []byte(out), log)
}

// compileDocument produces stylesheet for selected templates of doc with
// optional header.
func compileDocument(doc templates.Document, cfg *config.Config, opts CompileOptions, log *zap.Logger) (string, error) {
	filter := cfg.Stylesheet
	if len(opts.Templates) > 0 {
		filter.Templates = opts.Templates
	}

	selected := templates.Document{}
	for name, t := range doc {
		if filter.Selected(name) {
			selected[name] = t
		}
	}
	for _, name := range filter.Templates {
		if _, ok := doc[name]; !ok {
			return "", fmt.Errorf("template %q: %w", name, templates.ErrUnknownTemplate)
		}
	}
	if len(selected) < len(doc) {
		log.Debug("Templates filtered", zap.Strings("selected", selected.Names()))
	}

	// documents at rest are pruned
	body, err := css.NewCompiler(log).Compile(selected.Pruned())
	if err != nil {
		return "", err
	}
	if opts.NoHeader || filter.Header == "" {
		return body, nil
	}

	header, err := css.Banner(filter.Header, css.BannerValues{
		App:       misc.GetAppName(),
		Version:   misc.GetVersion(),
		Source:    opts.Source,
		Templates: selected.Names(),
		Generated: time.Now(),
	})
	if err != nil {
		return "", err
	}
	if header == "" {
		return body, nil
	}
	return header + "\n\n" + body, nil
}
