package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/scene"
)

func fakePreview(k scene.Kind, cols, rows int) (string, error) {
	return fmt.Sprintf("%s %dx%d", k, cols, rows), nil
}

// drive feeds msg to m and resolves one returned command.
func drive(t *testing.T, m SceneViewModel, msg tea.Msg) (SceneViewModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(SceneViewModel)
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func TestSceneViewInitialRender(t *testing.T) {
	m := NewSceneViewModel(scene.NewCycler(), fakePreview)
	if !strings.Contains(m.View(), "rendering...") {
		t.Errorf("View() before first preview = %q", m.View())
	}

	m, _ = drive(t, m, m.Init()())
	view := m.View()
	if !strings.Contains(view, "hue-wheel 80x22") {
		t.Errorf("View() = %q, want hue-wheel preview", view)
	}
	if !strings.Contains(view, "Press space to toggle visualizations") {
		t.Errorf("View() missing help line: %q", view)
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("View() missing position: %q", view)
	}
}

func TestSceneViewSpaceCycles(t *testing.T) {
	m := NewSceneViewModel(scene.NewCycler(), fakePreview)
	m, _ = drive(t, m, m.Init()())

	want := []scene.Kind{scene.ColorPeaks, scene.Gradients, scene.HueWheel}
	for _, k := range want {
		var msg tea.Msg
		m, msg = drive(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		if got := m.Cycler.Current(); got != k {
			t.Fatalf("Current() = %s, want %s", got, k)
		}
		m, _ = drive(t, m, msg)
		if !strings.Contains(m.View(), string(k)+" 80x22") {
			t.Errorf("View() = %q, want %s preview", m.View(), k)
		}
	}
}

func TestSceneViewDropsStalePreviews(t *testing.T) {
	m := NewSceneViewModel(scene.NewCycler(), fakePreview)
	stale := m.Init()()

	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = drive(t, m, stale)
	if strings.Contains(m.View(), "hue-wheel 80x22") {
		t.Error("stale hue-wheel preview shown after advancing")
	}
}

func TestSceneViewResize(t *testing.T) {
	m := NewSceneViewModel(scene.NewCycler(), fakePreview)
	m, msg := drive(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = drive(t, m, msg)
	if !strings.Contains(m.View(), "hue-wheel 120x38") {
		t.Errorf("View() = %q, want resized preview", m.View())
	}
}

func TestSceneViewShowsPreviewError(t *testing.T) {
	failing := func(scene.Kind, int, int) (string, error) {
		return "", errors.New(errors.ErrCodeInvalidViewport, "too small")
	}
	m := NewSceneViewModel(scene.NewCycler(), failing)
	m, _ = drive(t, m, m.Init()())
	if !strings.Contains(m.View(), "INVALID_VIEWPORT") {
		t.Errorf("View() = %q, want error", m.View())
	}
}

func TestSceneViewQuit(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			m := NewSceneViewModel(scene.NewCycler(), fakePreview)
			_, out := drive(t, m, msg)
			if _, ok := out.(tea.QuitMsg); !ok {
				t.Errorf("Update(%s) produced %T, want tea.QuitMsg", key, out)
			}
		})
	}
}

func TestPreviewViewport(t *testing.T) {
	w, h := previewViewport(80, 22)
	if w != 640 || h != 352 {
		t.Errorf("previewViewport(80, 22) = %vx%v, want 640x352", w, h)
	}

	w, h = previewViewport(2000, 600)
	if w > errors.MaxDimension || h > errors.MaxDimension {
		t.Errorf("previewViewport(2000, 600) = %vx%v, exceeds %d", w, h, errors.MaxDimension)
	}
	if got, want := w/h, float64(2000*8)/float64(600*16); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("aspect = %v, want %v", got, want)
	}
}
