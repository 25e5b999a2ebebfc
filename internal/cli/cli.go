package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/photosheet/pkg/buildinfo"
	"github.com/matzehuels/photosheet/pkg/observability"
	"github.com/matzehuels/photosheet/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = buildinfo.Name

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Status receives transient progress output such as the spinner.
	Status io.Writer
}

// New creates a new CLI instance whose logger and progress output share w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Status: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates a sheet from two positional arguments.
func (c *CLI) RootCommand() *cobra.Command {
	var flags sheetFlags

	root := &cobra.Command{
		Use:   appName + " <input_photo_path> <output_pdf_path>",
		Short: "Photosheet tiles a passport photo onto a printable 4×6 sheet",
		Long: `Photosheet crops a photo to passport proportions, adds a white cutting
border, tiles copies onto a 4×6 inch sheet at 300 DPI and draws cutting guides
around every copy. The result is a single-page PDF (or a PNG preview).`,
		Example: `  photosheet me.jpg sheet.pdf
  photosheet --preset classic me.jpg sheet.pdf
  photosheet --rows 2 --cols 2 --guide solid me.jpg preview.png`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          positionalPaths,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], args[1], cfg, flags.format)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags.register(root)
	root.Flags().StringVar(&flags.format, "format", "", "output format: pdf (default), png (default: from output extension)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use and routes stage events
// to the logger at debug level.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	observability.SetPipelineHooks(newLogHooks(logger))
	return pipeline.NewRunner(logger)
}
