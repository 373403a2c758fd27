package mathitem

// Metrics captures the rendering-environment parameters in effect when an
// item is typeset. A Metrics value is immutable for a given typeset pass;
// if the environment changes (e.g., the container is resized) it must be
// recaptured before re-typesetting.
type Metrics struct {
	// Em is the size of one em unit, in the renderer's base units.
	Em float64

	// Ex is the size of one ex unit, in the renderer's base units.
	Ex float64

	// ContainerWidth is the available width of the container.
	ContainerWidth float64

	// LineWidth is the width at which the renderer should break lines.
	LineWidth float64

	// Scale is a unitless scaling factor applied to the output.
	Scale float64
}

// IsZero returns true if the metrics have not been captured yet.
func (m Metrics) IsZero() bool {
	return m == Metrics{}
}

// BBox is the bounding-box result of typesetting. Its keys are defined by
// the output renderer and opaque to the lifecycle core; the core only
// guarantees that the container is reset to empty when the item leaves the
// typeset state.
type BBox map[string]float64

// NewBBox returns a fresh, empty bounding box.
func NewBBox() BBox {
	return make(BBox)
}

// DataMap is an extension point for collaborator-private state, keyed by
// collaborator identity (typically the jax name). The lifecycle core clears
// the whole map on rollback past the owning state; it never inspects the
// values.
type DataMap map[string]any

// NewDataMap returns a fresh, empty data map.
func NewDataMap() DataMap {
	return make(DataMap)
}
