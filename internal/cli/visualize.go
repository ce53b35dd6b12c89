package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/render/draw"
)

// visualizeCommand creates the visualize command for rendering a saved frame.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "visualize [frame.json]",
		Short: "Render a computed frame",
		Long: `Render a computed frame.

The visualize command takes a frame.json file (produced by 'layout') and
renders it to SVG, PNG or JSON. The frame carries all geometry, so this
step is purely about rasterizing and encoding.

Use 'render' as a shortcut to go directly from a scene to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), cmd, &flags, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached results")
	flags.registerRender(cmd)

	return cmd
}

// runVisualize loads the frame and renders it.
func (c *CLI) runVisualize(ctx context.Context, cmd *cobra.Command, flags *renderFlags, input, output string) error {
	frame, err := draw.ReadFrameFile(input)
	if err != nil {
		return fmt.Errorf("load frame %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.baseOptions()
	flags.apply(cmd, &opts)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", frame.Scene))
	spinner.Start()
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, frame, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(newOutputTarget(output, basePath(input)), artifacts)
	if err != nil {
		return err
	}

	printSuccess("Visualization complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(frame.Stats(), cacheHit)
	return nil
}
