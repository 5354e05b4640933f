package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ib-77/bevy-notion/internal/bevy"
	"github.com/ib-77/bevy-notion/internal/config"
	"github.com/ib-77/bevy-notion/internal/logging"
	"github.com/ib-77/bevy-notion/internal/notion"
	"github.com/ib-77/bevy-notion/internal/runner"
)

var (
	version = "dev"
	commit  = "none"
)

// ExitError carries a non-zero process exit code out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Deps are the outside-world hooks of the root command.
type Deps struct {
	Environ func(envFile string) (map[string]string, error)
	Connect runner.Connector
}

func DefaultDeps() Deps {
	return Deps{
		Environ: config.Environ,
		Connect: func(cfg config.Config) runner.Workspace {
			return notion.NewClient(cfg.APIKey, &http.Client{Timeout: cfg.Timeout})
		},
	}
}

type flags struct {
	envFile   string
	eventFile string
	logFormat string
	logLevel  string
}

func NewRootCommand(deps Deps) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "bevy-notion",
		Short: "Copy a Bevy event into a new Notion database",
		Long: `bevy-notion creates a database under NOTION_PAGE_ID and adds one
Bevy event to it as a page. Without --event-file the event is the
example payload from Bevy's webhook documentation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, f)
		},
	}

	rootCmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file read before the process environment")
	rootCmd.Flags().StringVar(&f.eventFile, "event-file", "", "Bevy event payload (JSON) to use instead of the example event")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bevy-notion %s (%s)\n", version, commit)
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, deps Deps, f flags) error {
	format, err := logging.ParseFormat(f.logFormat)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), format, level)

	environ, err := deps.Environ(f.envFile)
	if err != nil {
		logger.Warn("ignoring env file", "path", f.envFile, "error", err)
	}

	var source runner.EventSource = bevy.ExampleSource{}
	if f.eventFile != "" {
		source = bevy.FileSource{Path: f.eventFile}
	}

	r := &runner.Runner{
		Connect: deps.Connect,
		Events:  source,
		Logger:  logger,
		Out:     cmd.OutOrStdout(),
	}
	report := r.Run(cmd.Context(), environ)
	logger.Debug("run finished", "run_id", report.RunID.String(), "stage", report.Stage.String(), "exit_code", report.ExitCode)

	if report.ExitCode != 0 {
		return &ExitError{Code: report.ExitCode}
	}
	return nil
}

// Execute runs the root command against the real environment and returns
// the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(DefaultDeps()).ExecuteContext(ctx); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
