package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/pipeline"
)

// hierarchyCommand creates the hierarchy command, which draws a scene's
// color hierarchy as a node-link diagram.
func (c *CLI) hierarchyCommand() *cobra.Command {
	var (
		flags    renderFlags
		output   string
		dir      string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "hierarchy [scene]",
		Short: "Draw a scene's color hierarchy as a node-link diagram",
		Long: `Draw a scene's color hierarchy as a node-link diagram.

Each stage of the hierarchy becomes a row of color nodes with an edge from
every color to the next stage. Output is written as
<scene>.hierarchy.<format>. JSON output is the hierarchy itself.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sceneArgs(args, false)
			if err != nil {
				return err
			}
			return c.runHierarchy(cmd.Context(), cmd, &flags, names[0], output, dir, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with HCL coordinates")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached results")
	flags.registerRender(cmd)

	return cmd
}

func (c *CLI) runHierarchy(ctx context.Context, cmd *cobra.Command, flags *renderFlags, name, output, dir string, detailed bool) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.baseOptions()
	opts.Scene = name
	opts.VizType = pipeline.VizTypeHierarchy
	opts.Detailed = detailed
	flags.apply(cmd, &opts)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s hierarchy...", name))
	spinner.Start()
	artifacts, cacheHit, err := runner.RenderHierarchyWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Hierarchy failed")
		return fmt.Errorf("hierarchy %s: %w", name, err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(newOutputTarget(output, filepath.Join(dir, name+".hierarchy")), artifacts)
	if err != nil {
		return err
	}

	printSuccess("Hierarchy complete")
	for _, p := range paths {
		printFile(p)
	}
	h := opts.Kind().Hierarchy()
	printStatusLine([]string{
		fmt.Sprintf("%d stages", len(h)),
		fmt.Sprintf("%d colors", h.ColorCount()),
	}, cacheHit)
	return nil
}
