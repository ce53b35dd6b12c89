package draw

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
)

// Frame is everything a sink needs to draw one scene.
type Frame struct {
	Scene        string        `json:"scene" bson:"scene"`
	Viewport     geom.Viewport `json:"viewport" bson:"viewport"`
	Meshes       []SectorMesh  `json:"meshes,omitempty" bson:"meshes,omitempty"`
	Instructions []Instruction `json:"instructions" bson:"instructions"`
}

// Stats counts instructions per kind.
type Stats struct {
	Triangles int
	Sectors   int
	Rects     int
	Meshes    int
}

// Stats returns per-kind instruction counts.
func (f Frame) Stats() Stats {
	s := Stats{Meshes: len(f.Meshes)}
	for _, in := range f.Instructions {
		switch in.Kind {
		case KindTriangle:
			s.Triangles++
		case KindSector:
			s.Sectors++
		case KindTexturedRect:
			s.Rects++
		}
	}
	return s
}

// Mesh returns the mesh a sector references.
func (f Frame) Mesh(id MeshID) (SectorMesh, bool) {
	if id < 0 || int(id) >= len(f.Meshes) {
		return SectorMesh{}, false
	}
	return f.Meshes[id], true
}

// SortedByZ returns the instructions in painting order: ascending Z,
// ties kept in emission order.
func (f Frame) SortedByZ() []Instruction {
	out := slices.Clone(f.Instructions)
	slices.SortStableFunc(out, func(a, b Instruction) int {
		return cmp.Compare(a.Z(), b.Z())
	})
	return out
}

// Validate checks the union discipline and mesh references.
func (f Frame) Validate() error {
	if err := f.Viewport.Validate(); err != nil {
		return err
	}
	for i, in := range f.Instructions {
		switch in.Kind {
		case KindTriangle:
			if in.Triangle == nil {
				return errors.New(errors.ErrCodeInvalidInput, "instruction %d: triangle missing", i)
			}
		case KindSector:
			if in.Sector == nil {
				return errors.New(errors.ErrCodeInvalidInput, "instruction %d: sector missing", i)
			}
			if _, ok := f.Mesh(in.Sector.Mesh); !ok {
				return errors.New(errors.ErrCodeInvalidInput, "instruction %d: unknown mesh %d", i, in.Sector.Mesh)
			}
		case KindTexturedRect:
			if in.Rect == nil {
				return errors.New(errors.ErrCodeInvalidInput, "instruction %d: rect missing", i)
			}
			if !in.Rect.Texture.Valid() {
				return errors.New(errors.ErrCodeInvalidInput, "instruction %d: texture size mismatch", i)
			}
		default:
			return errors.New(errors.ErrCodeInvalidInput, "instruction %d: unknown kind %q", i, in.Kind)
		}
	}
	return nil
}

// =============================================================================
// Frame Serialization API
// =============================================================================

// MarshalFrame serializes a Frame to pretty-printed JSON bytes.
func MarshalFrame(f Frame) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// UnmarshalFrame deserializes JSON bytes into a Frame and validates it.
func UnmarshalFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal frame")
	}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// WriteFrameFile writes a Frame to a JSON file.
func WriteFrameFile(f Frame, path string) error {
	data, err := MarshalFrame(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFrameFile reads a Frame from a JSON file.
func ReadFrameFile(path string) (Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalFrame(data)
}
