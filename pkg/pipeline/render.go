package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/render/nodelink"
	"github.com/matzehuels/prismview/pkg/render/sink"
)

// RenderFrame renders f in every requested format. Formats are rendered
// concurrently; the first failure cancels the rest.
func RenderFrame(ctx context.Context, f draw.Frame, opts Options) (map[string][]byte, error) {
	return renderAll(ctx, opts.Formats, func(format string) ([]byte, error) {
		return renderFrameFormat(f, format, opts)
	})
}

func renderFrameFormat(f draw.Frame, format string, opts Options) ([]byte, error) {
	caption := ""
	if opts.Caption {
		caption = opts.Kind().Title()
	}

	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Background != "" {
			svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
		}
		if caption != "" {
			svgOpts = append(svgOpts, sink.WithCaption(caption))
		}
		return sink.RenderSVG(f, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.Background != "" {
			pngOpts = append(pngOpts, sink.WithPNGBackground(opts.Background))
		}
		if caption != "" {
			pngOpts = append(pngOpts, sink.WithPNGCaption(caption))
		}
		return sink.RenderPNG(f, pngOpts...)
	case FormatJSON:
		return sink.RenderJSON(f)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format: %s", format)
}

// RenderHierarchy renders the scene's color hierarchy as a node-link
// diagram. JSON output is the hierarchy itself as nested hex strings.
func RenderHierarchy(ctx context.Context, opts Options) (map[string][]byte, error) {
	k := opts.Kind()
	h := k.Hierarchy()
	dot := nodelink.ToDOT(k.Title(), h, nodelink.Options{Detailed: opts.Detailed})

	return renderAll(ctx, opts.Formats, func(format string) ([]byte, error) {
		switch format {
		case FormatSVG:
			return nodelink.RenderSVG(dot)
		case FormatPNG:
			return nodelink.RenderPNG(dot, opts.Scale)
		case FormatJSON:
			return json.MarshalIndent(h, "", "  ")
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported hierarchy format: %s", format)
	})
}

// renderAll runs fn once per format on an errgroup and collects results.
func renderAll(ctx context.Context, formats []string, fn func(format string) ([]byte, error)) (map[string][]byte, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(formats))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fn(format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
