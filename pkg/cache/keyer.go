package cache

// keyVersion is bumped whenever the frame or artifact encoding changes.
const keyVersion = 1

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// FrameKey identifies a computed scene frame.
	FrameKey(opts FrameKeyOpts) string
	// ArtifactKey identifies a rendered output of a frame.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
	// HierarchyKey identifies a rendered node-link diagram.
	HierarchyKey(scene string, opts ArtifactKeyOpts) string
}

// FrameKeyOpts are the inputs that determine a frame.
type FrameKeyOpts struct {
	Scene  string  `json:"scene"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Metric string  `json:"metric,omitempty"`
}

// ArtifactKeyOpts are the inputs that determine an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Caption    string  `json:"caption,omitempty"`
	Detailed   bool    `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key options into "<kind>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) FrameKey(opts FrameKeyOpts) string {
	return hashKey("frame", keyVersion, opts)
}

func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", keyVersion, frameHash, opts)
}

func (DefaultKeyer) HierarchyKey(scene string, opts ArtifactKeyOpts) string {
	return hashKey("hierarchy", keyVersion, scene, opts)
}

var _ Keyer = DefaultKeyer{}
