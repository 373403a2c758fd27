package mathdoc

import (
	"golang.org/x/term"

	"github.com/yaklabco/gomathdoc/pkg/find"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
	"github.com/yaklabco/gomathdoc/pkg/textex"
	"github.com/yaklabco/gomathdoc/pkg/unirender"
)

// DefaultContainerWidth is the assumed container width when none can be
// measured from the environment.
const DefaultContainerWidth = 80

// Options configures a Document.
type Options struct {
	// InputJax compiles found expressions. Defaults to the TeX jax.
	InputJax mathitem.InputJax

	// Renderer typesets compiled trees. Defaults to the Unicode text
	// renderer.
	Renderer mathitem.Renderer

	// Metrics are the environment parameters for the pass. Zero means
	// DefaultMetrics().
	Metrics mathitem.Metrics

	// ErrorIndicator, when non-empty, is spliced over the source span of
	// every expression that fails to compile or typeset. When empty the
	// source text is left in place.
	ErrorIndicator string
}

// DefaultOptions returns options with the default jax, renderer and
// metrics.
func DefaultOptions() Options {
	return Options{
		InputJax: textex.New(),
		Renderer: unirender.New(),
		Metrics:  DefaultMetrics(),
	}
}

// DefaultMetrics returns the metrics assumed when the environment cannot
// be measured: one-cell em units and an 80-cell container.
func DefaultMetrics() mathitem.Metrics {
	return mathitem.Metrics{
		Em:             1,
		Ex:             0.5,
		ContainerWidth: DefaultContainerWidth,
		LineWidth:      DefaultContainerWidth,
		Scale:          1,
	}
}

// TerminalMetrics captures metrics from the terminal attached to fd,
// falling back to DefaultMetrics when fd is not a terminal.
func TerminalMetrics(fd int) mathitem.Metrics {
	m := DefaultMetrics()
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		m.ContainerWidth = float64(w)
		m.LineWidth = float64(w)
	}
	return m
}

// withDefaults fills unset option fields.
func (o Options) withDefaults() Options {
	if o.InputJax == nil {
		o.InputJax = textex.New()
	}
	if o.Renderer == nil {
		o.Renderer = unirender.New()
	}
	if o.Metrics.IsZero() {
		o.Metrics = DefaultMetrics()
	}
	return o
}

// DefaultFinder returns a finder with the standard delimiter pairs.
// Documents do not own a finder; the driver takes one per FindMath call so
// that delimiter configuration stays a per-run concern.
func DefaultFinder() *find.Finder {
	return find.New()
}
