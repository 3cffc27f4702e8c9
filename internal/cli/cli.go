// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the numberedparams command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fillmore-labs.com/numberedparams/analyzer"
	"fillmore-labs.com/numberedparams/internal/checker"
	"fillmore-labs.com/numberedparams/internal/config"
	"fillmore-labs.com/numberedparams/internal/output"
	"fillmore-labs.com/numberedparams/internal/source"
)

// ErrOffenses is returned when offenses remain after the run.
var ErrOffenses = errors.New("offenses detected")

// Output formats.
const (
	FormatText    = "text"
	FormatSummary = "summary"
)

type options struct {
	autoCorrect  bool
	maxArguments int
	configFile   string
	parallel     int
	generated    bool
	format       string
	noColor      bool
	verbose      bool
}

// NewCommand creates the root command.
func NewCommand() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "numberedparams [paths...]",
		Short: "Suggest numbered parameters for single-line Ruby blocks",
		Long: `numberedparams finds single-line Ruby blocks with named parameters
and rewrites them to numbered parameters:

  users.map { |user| user.name }  =>  users.map { _1.name }

Paths may be files or directories, directories are searched recursively.
Settings are read from the Style/PreferNumberedParameter section of .rubocop.yml,
command line flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&o.autoCorrect, "autocorrect", "a", false, "rewrite offending blocks in place")
	flags.IntVar(&o.maxArguments, "max-arguments", config.DefaultMaxArguments, "maximum number of block parameters to suggest numbered parameters")
	flags.StringVarP(&o.configFile, "config", "c", "", "configuration file (default "+config.DefaultFile+" when present)")
	flags.IntVarP(&o.parallel, "parallel", "p", runtime.GOMAXPROCS(0), "number of files checked in parallel")
	flags.BoolVar(&o.generated, "generated", false, "check generated files")
	flags.StringVarP(&o.format, "format", "f", FormatText, "output format: "+FormatText+" or "+FormatSummary)
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")

	return cmd
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cmd := NewCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0

	case errors.Is(err, ErrOffenses):
		return 1

	default:
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		return 2
	}
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	if o.format != FormatText && o.format != FormatSummary {
		return fmt.Errorf("unknown format %q", o.format)
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	settings, err := o.settings(cmd, logger)
	if err != nil {
		return err
	}

	if !settings.Enabled {
		logger.Info("Style/PreferNumberedParameter is disabled by configuration")

		return nil
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := source.Find(args, settings.Matcher())
	if err != nil {
		return err
	}

	opts := analyzer.Options{
		analyzer.WithMaxArguments(settings.MaxArguments),
		analyzer.WithAutoCorrect(settings.AutoCorrect),
		analyzer.WithGenerated(o.generated),
	}

	logger.Debug("Checking files", slog.Int("files", len(files)), opts.LogAttr())

	res, err := checker.Run(cmd.Context(), analyzer.New(opts), files, checker.Options{
		Parallel: o.parallel,
		Fix:      o.autoCorrect,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := output.New(out, !o.noColor && colorTerminal(out))

	switch o.format {
	case FormatSummary:
		err = printer.Summary(res)

	default:
		err = printer.Text(res)
	}

	if err != nil {
		return err
	}

	if res.Offenses() > res.Corrected() {
		return ErrOffenses
	}

	return nil
}

// settings reads the configuration file and applies flags set on the command line.
func (o *options) settings(cmd *cobra.Command, logger *slog.Logger) (config.Settings, error) {
	path, explicit := o.configFile, o.configFile != ""
	if !explicit {
		path = config.DefaultFile
	}

	settings := config.Default()

	f, err := config.Load(path)
	switch {
	case err == nil:
		logger.Debug("Loaded configuration", slog.String("path", path))

		if settings, err = f.Settings(); err != nil {
			return config.Settings{}, fmt.Errorf("%s: %w", path, err)
		}

	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no configuration

	default:
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("max-arguments") {
		if o.maxArguments < 1 {
			return config.Settings{}, fmt.Errorf("%w: --max-arguments must be positive, got %d", config.ErrInvalid, o.maxArguments)
		}

		settings.MaxArguments = o.maxArguments
	}

	return settings, nil
}

// colorTerminal reports whether w is a terminal that should receive colored output.
func colorTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
