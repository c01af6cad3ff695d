package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flatpick/internal/bootstrap"
	"flatpick/internal/modules/launcher/dto"
	"flatpick/internal/platform/config"
	apperrors "flatpick/internal/platform/errors"
	"flatpick/internal/platform/logging"
	"flatpick/internal/ui/theme"
)

var version = "dev"

const (
	msgNoApps      = "No Flatpak applications found."
	msgNoSelection = "No application selected."
)

type options struct {
	configPath string
	selector   string
	logLevel   string
}

func main() {
	streams := bootstrap.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := newRootCmd(streams).Execute(); err != nil {
		if msg := describeError(err); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, theme.Error.Render(msg))
		}
		os.Exit(apperrors.ExitCode(err))
	}
}

func newRootCmd(streams bootstrap.Streams) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "flatpick",
		Short:         "Fuzzy-find an installed Flatpak application and run it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, streams)
			if err != nil {
				return err
			}
			result, err := app.LauncherCLI.Run(cmd.Context())
			if err != nil {
				return err
			}
			switch result.Outcome {
			case dto.OutcomeNoApps:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgNoApps)
			case dto.OutcomeNoSelection:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgNoSelection)
			}
			if result.ExitCode != 0 {
				return &apperrors.ExitError{Code: result.ExitCode}
			}
			return nil
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.yaml or .toml)")
	root.PersistentFlags().StringVar(&opts.selector, "selector", "", "selector: fzf|builtin|auto")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error|disabled")

	root.AddCommand(newListCmd(&opts, streams))
	root.AddCommand(newVersionCmd())
	return root
}

func loadApp(opts options, streams bootstrap.Streams) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.selector != "" {
		cfg.Finder.Mode = opts.selector
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	log := logging.New(config.AppName, cfg.Log.Level, streams.Err)
	return bootstrap.New(cfg, streams, log)
}

func newListCmd(opts *options, streams bootstrap.Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the formatted application rows without selecting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*opts, streams)
			if err != nil {
				return err
			}
			out, err := app.LauncherCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgNoApps)
				return nil
			}
			printRows(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func printRows(w io.Writer, out dto.ListOutput) {
	_, _ = fmt.Fprintln(w, theme.Title.Render(out.Header))
	for _, row := range out.Rows {
		_, _ = fmt.Fprintln(w, row)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flatpick version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// describeError renders err as the one-line message printed on stderr. A bare exit
// status from the launched command prints nothing.
func describeError(err error) string {
	var exitErr *apperrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return ""
	}
	var toolErr *apperrors.ExternalToolError
	if errors.As(err, &toolErr) {
		switch toolErr.Tool {
		case apperrors.ToolInventory:
			return "Error listing Flatpak apps: " + err.Error()
		case apperrors.ToolFinder:
			return "Error using fzf: " + err.Error()
		case apperrors.ToolPicker:
			return "Error using picker: " + err.Error()
		}
	}
	return "Error: " + err.Error()
}
