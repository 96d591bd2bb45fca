package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiregrid/core"
)

func wire(id string, points ...core.Point) core.RoutedWire {
	segments := core.SegmentsFromPath(points)
	return core.RoutedWire{
		ID:          id,
		Start:       points[0],
		End:         points[len(points)-1],
		Path:        points,
		Segments:    segments,
		TotalLength: core.TotalLengthOf(segments),
		State:       core.StateRouted,
	}
}

func component(id string, x, y, w, h int) core.ComponentBounds {
	return core.ComponentBounds{
		ID:     id,
		Bounds: core.Rect{X: x, Y: y, Width: w, Height: h},
	}
}

func TestWireAgainstComponents(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// Wire passes straight through a component it is not attached to.
	w := wire("w1", core.Point{X: 0, Y: 50}, core.Point{X: 200, Y: 50})
	blocker := component("c1", 90, 30, 40, 40)

	results := d.DetectAll([]core.RoutedWire{w}, []core.ComponentBounds{blocker})
	require.Len(t, results, 1)
	assert.True(t, results[0].HasCollision)
	assert.Equal(t, core.SeverityHigh, results[0].Severity)
	assert.Equal(t, []string{"w1"}, results[0].AffectedWires)
	assert.NotEmpty(t, results[0].Points)
}

func TestOwnComponentsAreExcluded(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// The wire starts at the component's edge, well within the
	// endpoint-to-center ownership tolerance.
	source := component("src", 0, 40, 20, 20)
	dest := component("dst", 180, 40, 20, 20)
	w := wire("w1", core.Point{X: 20, Y: 50}, core.Point{X: 180, Y: 50})

	results := d.DetectAll([]core.RoutedWire{w}, []core.ComponentBounds{source, dest})
	assert.Empty(t, results, "a wire must not collide with its own terminals")
}

func TestWirePairCrossing(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a := wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50})
	b := wire("b", core.Point{X: 50, Y: 0}, core.Point{X: 50, Y: 100})

	xs := d.WirePair(a, b)
	require.Len(t, xs, 1)
	assert.Equal(t, core.IntersectionCrossing, xs[0].Type)
	assert.Equal(t, core.Point{X: 50, Y: 50}, xs[0].Point)
	assert.InDelta(t, 0.8, xs[0].Severity, 1e-9)
}

func TestWirePairOverlap(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a := wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50})
	b := wire("b", core.Point{X: 40, Y: 50}, core.Point{X: 140, Y: 50})

	xs := d.WirePair(a, b)
	require.Len(t, xs, 1)
	assert.Equal(t, core.IntersectionOverlap, xs[0].Type)
	assert.InDelta(t, 1.0, xs[0].Severity, 1e-9)
}

func TestWirePairJunction(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// Two wires meeting at a shared endpoint form a junction, not a defect.
	a := wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50})
	b := wire("b", core.Point{X: 100, Y: 50}, core.Point{X: 100, Y: 150})

	xs := d.WirePair(a, b)
	require.Len(t, xs, 1)
	assert.Equal(t, core.IntersectionJunction, xs[0].Type)
	assert.InDelta(t, 0.1, xs[0].Severity, 1e-9)
}

func TestWirePairSharedEndpointWithinTolerance(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// Endpoints 4 units apart are still "shared" under the 5-unit tolerance.
	a := wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50})
	b := wire("b", core.Point{X: 100, Y: 54}, core.Point{X: 100, Y: 150})

	shared, p := d.sharedEndpoint(a, b)
	assert.True(t, shared)
	assert.Equal(t, core.Point{X: 100, Y: 50}, p)
}

func TestWirePairNoContact(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a := wire("a", core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0})
	b := wire("b", core.Point{X: 0, Y: 100}, core.Point{X: 100, Y: 100})

	assert.Empty(t, d.WirePair(a, b))
}

func TestDetectAllSeverityMapping(t *testing.T) {
	d := NewDetector(DefaultConfig())

	crossing := []core.RoutedWire{
		wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50}),
		wire("b", core.Point{X: 50, Y: 0}, core.Point{X: 50, Y: 100}),
	}
	results := d.DetectAll(crossing, nil)
	require.Len(t, results, 1)
	assert.Equal(t, core.SeverityMedium, results[0].Severity)

	overlapping := []core.RoutedWire{
		wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50}),
		wire("b", core.Point{X: 40, Y: 50}, core.Point{X: 140, Y: 50}),
	}
	results = d.DetectAll(overlapping, nil)
	require.Len(t, results, 1)
	assert.Equal(t, core.SeverityHigh, results[0].Severity)
	assert.ElementsMatch(t, []string{"a", "b"}, results[0].AffectedWires)
}

func TestDetectAllDeterministicOrder(t *testing.T) {
	d := NewDetector(DefaultConfig())

	wires := []core.RoutedWire{
		wire("a", core.Point{X: 0, Y: 50}, core.Point{X: 200, Y: 50}),
		wire("b", core.Point{X: 50, Y: 0}, core.Point{X: 50, Y: 100}),
		wire("c", core.Point{X: 150, Y: 0}, core.Point{X: 150, Y: 100}),
	}

	first := d.DetectAll(wires, nil)
	for i := 0; i < 3; i++ {
		again := d.DetectAll(wires, nil)
		require.Equal(t, first, again, "repeated runs must produce identical reports")
	}
}

func TestZeroAreaComponentsSkipped(t *testing.T) {
	d := NewDetector(DefaultConfig())

	w := wire("w1", core.Point{X: 0, Y: 50}, core.Point{X: 100, Y: 50})
	degenerate := component("c1", 50, 50, 0, 0)

	assert.Empty(t, d.DetectAll([]core.RoutedWire{w}, []core.ComponentBounds{degenerate}))
}
