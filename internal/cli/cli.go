package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/graphlib/internal/app"
	"github.com/vk/graphlib/internal/graphio"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// exactArgs is cobra.ExactArgs reporting failures as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// formatFlag parses the --to flag of cmd.
func formatFlag(cmd *cobra.Command) (graphio.Format, error) {
	name, _ := cmd.Flags().GetString("to")
	f, err := graphio.ParseFormat(name)
	if err != nil {
		return "", usageError(err)
	}
	return f, nil
}

// NewRootCommand builds the graphlib command tree. Results go to outW, logs
// and errors to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	var (
		logLevel  string
		logFormat string
		envFile   string
		a         *app.App
	)

	root := &cobra.Command{
		Use:   "graphlib",
		Short: "Inspect, convert, filter and lay out graphs",
		Long: `graphlib reads a graph from an HCL definition (a .hcl file or a directory
of them) or from a JSON/YAML document and works with it.

Commands:
  inspect - print flags, sizes, sources, sinks and roots
  convert - write the graph as JSON or YAML
  filter  - drop nodes (and everything nested in them) and write the rest
  layout  - rank the graph and write it with node and edge positions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnvFile(envFile); err != nil {
				return usageError(err)
			}
			cfg, err := app.NewConfig(app.Config{LogLevel: logLevel, LogFormat: logFormat})
			if err != nil {
				return usageError(err)
			}
			a = app.NewApp(outW, errW, cfg)
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error' (env "+app.EnvLogLevel+").")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log output format: 'text' or 'json' (env "+app.EnvLogFormat+").")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional dotenv file to load before reading the environment.")

	inspectCmd := &cobra.Command{
		Use:   "inspect PATH",
		Short: "Print a summary of a graph",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Inspect(cmd.Context(), args[0])
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Write a graph as JSON or YAML",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return a.Convert(cmd.Context(), args[0], to)
		},
	}
	convertCmd.Flags().String("to", "json", "Output format: 'json' or 'yaml'.")

	var exclude []string
	filterCmd := &cobra.Command{
		Use:   "filter PATH",
		Short: "Drop nodes and write the remaining graph",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return a.Filter(cmd.Context(), args[0], exclude, to)
		},
	}
	filterCmd.Flags().String("to", "json", "Output format: 'json' or 'yaml'.")
	filterCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Node ids to drop, comma separated.")

	var rankSep, nodeSep float64
	layoutCmd := &cobra.Command{
		Use:   "layout PATH",
		Short: "Rank a directed acyclic graph and write node and edge positions",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return a.Layout(cmd.Context(), args[0], rankSep, nodeSep, to)
		},
	}
	layoutCmd.Flags().String("to", "json", "Output format: 'json' or 'yaml'.")
	layoutCmd.Flags().Float64Var(&rankSep, "rank-sep", 50, "Vertical distance between ranks.")
	layoutCmd.Flags().Float64Var(&nodeSep, "node-sep", 50, "Horizontal distance between nodes of one rank.")

	root.AddCommand(inspectCmd, convertCmd, filterCmd, layoutCmd)
	return root
}

// Run executes the command tree with args.
func Run(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if _, ok := err.(*ExitError); ok {
			return err
		}
		// cobra reports unknown subcommands as plain errors.
		if strings.HasPrefix(err.Error(), "unknown command") {
			return usageError(err)
		}
		return fmt.Errorf("graphlib: %w", err)
	}
	return nil
}
