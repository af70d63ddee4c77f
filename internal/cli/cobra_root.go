package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory AppFactory
	app     *App
	config  *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The App
// is built by factory after flags are parsed.
func NewRootCommand(factory AppFactory) *RootCommand {
	root := &RootCommand{
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "A command-line task list",
		Long: `Task List (tl) keeps a short list of things to do.

FEATURES:
  • Add, complete and remove tasks
  • Filter by active or completed and sort by creation time
  • Interactive terminal view with an add box and keyboard controls
  • Export to csv, json, yaml or pdf
  • Store tasks in SQLite, a JSON file, MySQL or memory

EXAMPLES:
  tl add "Buy milk"                        # Add a task
  tl list                                  # List every task, newest first
  tl list --filter active --oldest         # Active tasks, oldest first
  tl toggle 3f2a                           # Complete or reopen a task by id prefix
  tl remove 3f2a                           # Remove a task
  tl summary                               # Count tasks
  tl export --format pdf --output tasks.pdf
  tl ui                                    # Interactive view

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: --config, TL_CONFIG, or ~/.config/tl/config.toml

  Storage Configuration:
    TL_STORAGE_DRIVER                      sqlite, file, mysql or memory (default: sqlite)
    TL_STORAGE_DIR                         Data directory (default: ~/.tl)
    TL_STORAGE_FILENAME                    SQLite filename (default: tl.db)
    TL_STORAGE_KEY                         Slot key for the task list (default: tasks)
    TL_STORAGE_DSN                         MySQL DSN
    TL_STORAGE_QUERY_TIMEOUT               Query timeout (default: 10s)
    TL_STORAGE_WRITE_TIMEOUT               Write timeout (default: 5s)

  Display Configuration:
    TL_DISPLAY_TIME_FORMAT                 Time format (default: 2006-01-02 15:04)
    TL_DISPLAY_RELATIVE                    Show relative times (default: true)
    TL_DISPLAY_ID_LENGTH                   Shown id characters (default: 8)
    TL_DISPLAY_FILTER                      Default filter (default: all)
    TL_DISPLAY_OLDEST_FIRST                Oldest first by default (default: false)

  Other Configuration:
    TL_VALIDATION_TEXT_MAX                 Max task length (default: 200)
    TL_NOTICE_TIMEOUT                      Error banner timeout (default: 5s)
    TL_EXPORT_PDF_FONT                     TrueType font for pdf export (needed for non-Latin text)
    TL_LOG_LEVEL, TL_LOG_FORMAT            Logging (default: warn, text)
    TL_DEBUG                               Force debug logging
    TL_APP_TIMEOUT                         Application timeout (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the App afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.closeApp()
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TL_CONFIG)")

	// Storage configuration
	flags.String("storage-driver", "", "Storage driver: sqlite, file, mysql, memory (overrides TL_STORAGE_DRIVER)")
	flags.String("storage-dir", "", "Data directory (overrides TL_STORAGE_DIR)")
	flags.String("storage-key", "", "Slot key for the task list (overrides TL_STORAGE_KEY)")
	flags.String("dsn", "", "MySQL DSN (overrides TL_STORAGE_DSN)")

	// Logging configuration
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TL_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text, json, logfmt (overrides TL_LOG_FORMAT)")

	// Validation configuration
	flags.Int("max-length", 0, "Maximum task length (overrides TL_VALIDATION_TEXT_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TL_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TL_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a new task",
		Long:  "Add a new active task. All arguments are joined with spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with optional filtering and ordering.

Examples:
  tl list                        # All tasks, newest first
  tl list --filter completed     # Completed tasks only
  tl list --oldest               # Oldest first`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			opts := ListOptions{
				Filter: r.filterFlag(cmd),
				Oldest: r.oldestFlag(cmd),
			}
			return NewListCommand(r.app, opts).Execute(ctx, args)
		},
	}
	addViewFlags(listCmd)

	toggleCmd := &cobra.Command{
		Use:   "toggle [id]",
		Short: "Complete or reopen a task",
		Long:  "Flip the completion state of a task. A unique id prefix is enough.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewToggleCommand(r.app).Execute(ctx, args)
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove [id]",
		Short:   "Remove a task",
		Long:    "Remove a task. A unique id prefix is enough. This cannot be undone.",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewRemoveCommand(r.app).Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Count tasks by state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks",
		Long: `Export tasks as csv, json, yaml or pdf.

Examples:
  tl export                                 # csv to stdout
  tl export --format yaml --filter active
  tl export --format pdf --output tasks.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			opts := ExportOptions{
				Format: format,
				Filter: r.filterFlag(cmd),
				Oldest: r.oldestFlag(cmd),
				Output: output,
			}
			return NewExportCommand(r.app, opts).Execute(ctx, args)
		},
	}
	addViewFlags(exportCmd)
	exportCmd.Flags().StringP("format", "f", "csv", "Export format: csv, json, yaml, pdf")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task list",
		Long: `Open the interactive terminal view.

Keys:
  enter        add the typed task
  down, esc    move to the task list
  space        complete or reopen the selected task
  d, x         delete the selected task
  tab          cycle All / Active / Completed
  o, ctrl+o    toggle Newest First / Oldest First
  q, ctrl+c    quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUICommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		toggleCmd,
		removeCmd,
		summaryCmd,
		exportCmd,
		uiCmd,
	)
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("filter", "", "Show all, active or completed tasks")
	cmd.Flags().Bool("oldest", false, "Order oldest first")
}

// filterFlag returns --filter or the configured default filter
func (r *RootCommand) filterFlag(cmd *cobra.Command) string {
	if cmd.Flags().Changed("filter") {
		filter, _ := cmd.Flags().GetString("filter")
		return filter
	}
	return r.config.Display.DefaultFilter
}

// oldestFlag returns --oldest or the configured default order
func (r *RootCommand) oldestFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("oldest") {
		oldest, _ := cmd.Flags().GetBool("oldest")
		return oldest
	}
	return r.config.Display.OldestFirst
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// setup resolves configuration and builds the App
func (r *RootCommand) setup() error {
	if r.factory == nil {
		return fmt.Errorf("application not initialized")
	}

	loader := config.NewLoader()
	if path, _ := r.cmd.PersistentFlags().GetString("config"); path != "" {
		loader = loader.WithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg

	app, err := r.factory(cfg)
	if err != nil {
		return err
	}
	app.SetOutput(r.cmd.OutOrStdout(), r.cmd.ErrOrStderr())
	r.app = app
	return nil
}

// getOverridesFromFlags collects the global flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}

	overrides.StorageDriver = stringFlag("storage-driver")
	overrides.StorageDir = stringFlag("storage-dir")
	overrides.StorageKey = stringFlag("storage-key")
	overrides.StorageDSN = stringFlag("dsn")
	overrides.LogLevel = stringFlag("log-level")
	overrides.LogFormat = stringFlag("log-format")

	if flags.Changed("max-length") {
		maxLength, _ := flags.GetInt("max-length")
		overrides.TextMaxLength = &maxLength
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

func (r *RootCommand) closeApp() {
	if r.app == nil {
		return
	}
	if err := r.app.Close(); err != nil {
		r.app.logger.Warn("failed to close storage", "err", err)
	}
	r.app = nil
}
