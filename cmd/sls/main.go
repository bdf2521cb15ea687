package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/michaelscutari/sls/internal/config"
	"github.com/michaelscutari/sls/internal/filter"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return exitCode(cmd.ExecuteContext(ctx), stderr)
}

// exitCode reports err on stderr and maps it to a process exit status.
// An interrupted walk exits 130 like a shell-killed process.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInterrupted):
		return 130
	case errors.Is(err, filter.ErrInvalidDateRange):
		printError(stderr, "Invalid date range format for --modified — expected YYYY-MM-DD..YYYY-MM-DD")
		return 1
	default:
		printError(stderr, err.Error())
		return 1
	}
}

func printError(w io.Writer, msg string) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, msg)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "sls [path]",
		Short: "List directory entries with size, date and pattern filters",
		Long: `sls walks a directory tree and lists the entries that pass every
configured filter, either as decorated text or as JSON.

Every flag can also be set through an SLS_* environment variable
(SLS_MIN_SIZE=10KB) or a config file passed with --config.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cfg, root, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Config file with flag defaults (YAML, TOML or JSON)")
	config.RegisterFlags(cmd.Flags())

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
