package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/render/draw"
)

// layoutCommand creates the layout command for computing frames.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Compute the draw frame of a scene",
		Long: `Compute the draw frame of a scene.

The layout command runs the geometry generators for a scene and writes the
resulting instruction list as <scene>.frame.json. The frame can be
rendered to SVG, PNG or JSON with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sceneArgs(args, false)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd, &flags, names[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.frame.json)")
	flags.registerLayout(cmd)

	return cmd
}

// runLayout computes the frame and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, flags *renderFlags, name, output string) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.baseOptions()
	opts.Scene = name
	flags.apply(cmd, &opts)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %s...", name))
	spinner.Start()
	frame, cacheHit, err := runner.GenerateFrameWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = name + ".frame.json"
	}
	if err := validateOutputPath(outputPath); err != nil {
		return err
	}
	if err := draw.WriteFrameFile(frame, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(frame.Stats(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+filepath.ToSlash(outputPath))

	return nil
}
