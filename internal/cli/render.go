package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/pipeline"
	"github.com/matzehuels/prismview/pkg/scene"
)

// renderCommand creates the render command (layout + visualize in one step).
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
		dir    string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "render [scene...]",
		Short: "Lay out and render scenes in one step",
		Long: `Lay out and render scenes in one step.

This is a shortcut that combines 'layout' and 'visualize'. Each scene is
written as <scene>.<format> unless -o names the output. With several
scenes, use --dir to choose the output directory.

Available scenes: hue-wheel, color-peaks, gradients.`,
		Example: `  prismview render hue-wheel
  prismview render color-peaks -f svg,png --scale 2
  prismview render --all --dir out/`,
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sceneArgs(args, all)
			if err != nil {
				return err
			}
			if output != "" && len(names) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "-o needs a single scene; use --dir for several")
			}
			return c.runRender(cmd.Context(), cmd, &flags, names, output, dir)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	cmd.Flags().BoolVar(&all, "all", false, "render every scene")
	flags.registerLayout(cmd)
	flags.registerRender(cmd)

	return cmd
}

// runRender executes the full pipeline for each scene and writes outputs.
func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, flags *renderFlags, names []string, output, dir string) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	p := newProgress(c.Logger)
	for _, name := range names {
		opts := c.baseOptions()
		opts.Scene = name
		flags.apply(cmd, &opts)

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", name))
		spinner.Start()
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", name, err)
		}
		spinner.Stop()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		paths, err := writeArtifacts(newOutputTarget(output, filepath.Join(dir, name)), result.Artifacts)
		if err != nil {
			return err
		}

		printSuccess("Rendered %s", StyleHighlight.Render(name))
		for _, p := range paths {
			printFile(p)
		}
		printStats(result.Stats.Stats, result.CacheInfo.FrameHit && result.CacheInfo.RenderHit)
	}
	p.done("rendered scenes", "count", len(names))
	return nil
}

// sceneArgs resolves positional scene names. No names and no --all means
// the default scene.
func sceneArgs(args []string, all bool) ([]string, error) {
	if all {
		if len(args) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--all takes no scene arguments")
		}
		var names []string
		for _, k := range scene.All() {
			names = append(names, k.String())
		}
		return names, nil
	}
	if len(args) == 0 {
		return []string{pipeline.DefaultScene}, nil
	}
	seen := make(map[string]bool, len(args))
	var names []string
	for _, a := range args {
		k, err := scene.Parse(a)
		if err != nil {
			return nil, err
		}
		if !seen[k.String()] {
			seen[k.String()] = true
			names = append(names, k.String())
		}
	}
	return names, nil
}

// completeScenes offers scene names for shell completion.
func completeScenes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, k := range scene.All() {
		out = append(out, k.String()+"\t"+k.Title())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
