package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pluqqy/cardform/cmd/commands"
	"github.com/pluqqy/cardform/internal/cli"
	"github.com/pluqqy/cardform/pkg/files"
	"github.com/pluqqy/cardform/pkg/models"
	"github.com/pluqqy/cardform/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

type rootOptions struct {
	config  string
	debug   bool
	verbose bool
	quiet   bool
	noColor bool
	yes     bool

	logFile *os.File
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cardform",
		Short: "Terminal builder for embedded card form layouts",
		Long: `Cardform arranges card payment inputs into rows and generates the
<primer-card-form> markup for them. Run it without arguments for the
interactive builder, or use 'cardform compose' from scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(opts.quiet, opts.noColor, opts.yes)

			logger, err := opts.logger(cmd.ErrOrStderr(), cmd.Name() == "cardform")
			if err != nil {
				return err
			}
			cmd.SetContext(cli.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.LoggerFromContext(cmd.Context())

			settings, err := opts.settings()
			if err != nil {
				return err
			}

			app := tui.NewApp(settings, logger)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "Settings file (default is <user config dir>/cardform/settings.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+files.DebugLogFile)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable symbols and color in output")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to confirmations")

	rootCmd.AddCommand(
		commands.NewInitCommand(),
		commands.NewPaletteCommand(),
		commands.NewComposeCommand(),
		newVersionCmd(),
	)
	return rootCmd, opts
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cardform",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cardform version %s\n", version)
		},
	}
}

// logger builds the command logger. The interactive builder owns the
// terminal, so it only logs when --debug sends output to a file.
func (o *rootOptions) logger(stderr io.Writer, interactive bool) (*log.Logger, error) {
	level := log.InfoLevel
	if o.verbose || o.debug {
		level = log.DebugLevel
	}

	w := stderr
	if interactive {
		w = io.Discard
	}
	if o.debug {
		f, err := os.OpenFile(files.DebugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open debug log: %w", err)
		}
		o.logFile = f
		w = f
	}
	return cli.NewLogger(w, level), nil
}

func (o *rootOptions) settings() (*models.Settings, error) {
	path := o.config
	if path == "" {
		p, err := files.DefaultSettingsPath()
		if err != nil {
			return models.DefaultSettings(), nil
		}
		path = p
	}
	settings, err := files.ReadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// closeLog releases the --debug log file, if one was opened
func (o *rootOptions) closeLog() {
	if o.logFile != nil {
		o.logFile.Close()
	}
}

// run executes the command line and always releases the debug log, also
// when a command fails
func run(ctx context.Context, args []string) error {
	rootCmd, opts := newRootCmd()
	defer opts.closeLog()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
