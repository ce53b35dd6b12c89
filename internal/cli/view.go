package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/render/sink"
	"github.com/matzehuels/prismview/pkg/scene"
)

const (
	// pixelsPerCell is the frame resolution behind one terminal column.
	pixelsPerCell = 8

	viewHelp = "Press space to toggle visualizations · q to quit"
)

// viewCommand opens the interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "view [scene]",
		Short: "Browse scenes in the terminal",
		Long: `Browse scenes in the terminal.

The viewer draws the current scene with half-block characters sized to the
terminal. Press space to cycle to the next visualization and q to quit.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			cycler := scene.NewCycler()
			if len(args) == 1 {
				k, err := scene.Parse(args[0])
				if err != nil {
					return err
				}
				if err := cycler.Select(k); err != nil {
					return err
				}
			}
			return c.runView(cmd.Context(), cycler, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runView(ctx context.Context, cycler *scene.Cycler, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	base := c.baseOptions()
	preview := func(k scene.Kind, cols, rows int) (string, error) {
		opts := base
		opts.Scene = k.String()
		opts.Width, opts.Height = previewViewport(cols, rows)
		frame, err := runner.GenerateFrame(ctx, opts)
		if err != nil {
			return "", err
		}
		return sink.RenderANSI(frame, cols, rows)
	}

	_, err = tea.NewProgram(NewSceneViewModel(cycler, preview), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// previewViewport maps a terminal area to frame dimensions. Each cell
// holds two vertically stacked pixels.
func previewViewport(cols, rows int) (float64, float64) {
	w := float64(cols * pixelsPerCell)
	h := float64(rows * 2 * pixelsPerCell)
	if s := max(w, h) / errors.MaxDimension; s > 1 {
		w, h = w/s, h/s
	}
	return w, h
}

// =============================================================================
// SceneViewModel - Interactive scene viewer
// =============================================================================

// PreviewFunc renders scene k into a cols×rows character block.
type PreviewFunc func(k scene.Kind, cols, rows int) (string, error)

// previewMsg delivers a finished preview.
type previewMsg struct {
	scene      scene.Kind
	cols, rows int
	text       string
	err        error
}

// SceneViewModel is the bubbletea model of the scene viewer.
type SceneViewModel struct {
	Cycler *scene.Cycler
	Width  int
	Height int

	preview PreviewFunc
	text    string
	err     error
	loading bool
}

// NewSceneViewModel creates a viewer model with an 80×24 terminal until
// the first window size arrives.
func NewSceneViewModel(cycler *scene.Cycler, preview PreviewFunc) SceneViewModel {
	return SceneViewModel{
		Cycler:  cycler,
		Width:   80,
		Height:  24,
		preview: preview,
		loading: true,
	}
}

func (m SceneViewModel) Init() tea.Cmd {
	return m.renderCmd()
}

func (m SceneViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "right", "n":
			m.Cycler.Advance()
			m.loading = true
			return m, m.renderCmd()
		}
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.loading = true
		return m, m.renderCmd()
	case previewMsg:
		cols, rows := m.previewSize()
		if msg.scene != m.Cycler.Current() || msg.cols != cols || msg.rows != rows {
			return m, nil // stale
		}
		m.text, m.err, m.loading = msg.text, msg.err, false
	}
	return m, nil
}

func (m SceneViewModel) View() string {
	var b strings.Builder

	k := m.Cycler.Current()
	pos, n := m.Cycler.Position()
	b.WriteString(StyleTitle.Render(k.Title()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d] %s", pos+1, n, k.Description())))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(FormatError(m.err))
	case m.loading && m.text == "":
		b.WriteString(StyleDim.Render("rendering..."))
	default:
		b.WriteString(m.text)
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(viewHelp))
	return b.String()
}

// previewSize is the character area left for the preview under the title
// and above the help line.
func (m SceneViewModel) previewSize() (int, int) {
	return max(m.Width, 1), max(m.Height-2, 1)
}

func (m SceneViewModel) renderCmd() tea.Cmd {
	k := m.Cycler.Current()
	cols, rows := m.previewSize()
	preview := m.preview
	return func() tea.Msg {
		text, err := preview(k, cols, rows)
		return previewMsg{scene: k, cols: cols, rows: rows, text: text, err: err}
	}
}

var _ tea.Model = SceneViewModel{}
