package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/photosheet/pkg/errors"
	"github.com/matzehuels/photosheet/pkg/pipeline"
	"github.com/matzehuels/photosheet/pkg/sheet"
)

// positionalPaths requires exactly <input_photo_path> <output_pdf_path>.
// On mismatch the usage is printed even though the root silences it for
// pipeline errors.
func positionalPaths(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		return nil
	}
	_ = cmd.Usage()
	return errors.New(errors.ErrCodeInvalidInput,
		"expected 2 arguments (input photo and output path), got %d", len(args))
}

// runGenerate runs the pipeline and reports the result.
func (c *CLI) runGenerate(ctx context.Context, input, output string, cfg sheet.Config, format string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := c.newRunner(logger)

	if info, err := os.Stat(output); err == nil && !info.IsDir() {
		printWarning("Overwriting %s", output)
	}

	spinner := newSpinner(ctx, c.Status, fmt.Sprintf("Building %d×%d sheet...", cfg.Grid.Rows, cfg.Grid.Cols))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:  input,
		Output: output,
		Format: format,
		Config: cfg,
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Sheet failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated sheet with %d copies", result.Stats.Copies))

	printSuccess("Sheet ready")
	printFile(result.Output)
	printDetail("%d copies · %s · %s", result.Stats.Copies, layoutSummary(cfg), result.Format)

	return nil
}

// layoutSummary describes the grid, e.g. "3×2 centered, portrait".
func layoutSummary(cfg sheet.Config) string {
	return fmt.Sprintf("%d×%d %s, %s", cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Spacing, cfg.Grid.Orientation)
}
