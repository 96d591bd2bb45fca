// Package collision tests routed wires against component bounds and against
// each other. Detection is a pure analysis pass: it never mutates its inputs
// and is only run when explicitly invoked.
package collision

import (
	"fmt"

	"wiregrid/core"
	"wiregrid/geometry"
)

// Config carries the detector's tunables. The severity values are hand-tuned
// thresholds carried over from the editor; they are configuration, not
// derived quantities.
type Config struct {
	// ComponentBuffer expands component bounds before the wire-component test.
	ComponentBuffer int
	// EndpointTolerance is the distance within which a wire endpoint is
	// considered attached to a component or shared with another wire.
	EndpointTolerance int
	// Severities per intersection class, on a 0-1 scale.
	JunctionSeverity float64
	CrossingSeverity float64
	OverlapSeverity  float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		ComponentBuffer:   2,
		EndpointTolerance: 5,
		JunctionSeverity:  0.1,
		CrossingSeverity:  0.8,
		OverlapSeverity:   1.0,
	}
}

// Detector classifies wire-component and wire-wire intersections.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	if cfg.EndpointTolerance <= 0 {
		cfg.EndpointTolerance = DefaultConfig().EndpointTolerance
	}
	return &Detector{cfg: cfg}
}

// DetectAll runs both collision passes over a wire and component snapshot.
// Results are ordered: component collisions first, then wire-wire results in
// input pair order, so repeated runs over the same snapshot are identical.
func (d *Detector) DetectAll(wires []core.RoutedWire, components []core.ComponentBounds) []core.CollisionResult {
	results := []core.CollisionResult{}

	for _, wire := range wires {
		if r, ok := d.wireAgainstComponents(wire, components); ok {
			results = append(results, r)
		}
	}

	for i := 0; i < len(wires); i++ {
		for j := i + 1; j < len(wires); j++ {
			for _, x := range d.WirePair(wires[i], wires[j]) {
				results = append(results, intersectionResult(x))
			}
		}
	}

	return results
}

// wireAgainstComponents tests every segment of a wire against every
// component's buffered bounds, skipping the wire's own source and destination
// components. Any hit is a high-severity collision.
func (d *Detector) wireAgainstComponents(wire core.RoutedWire, components []core.ComponentBounds) (core.CollisionResult, bool) {
	var points []core.Point

	for _, comp := range components {
		if comp.Bounds.Empty() {
			continue
		}
		if d.ownsEndpoint(wire, comp) {
			continue
		}
		expanded := comp.Bounds.Expand(d.cfg.ComponentBuffer)
		for _, seg := range wire.Segments {
			if p, ok := geometry.SegmentIntersectsRect(seg, expanded); ok {
				points = append(points, p)
			}
		}
	}

	if len(points) == 0 {
		return core.CollisionResult{}, false
	}
	return core.CollisionResult{
		HasCollision:  true,
		Points:        points,
		AffectedWires: []string{wire.ID},
		Severity:      core.SeverityHigh,
		Description:   fmt.Sprintf("wire %s crosses component bounds", wire.ID),
	}, true
}

// ownsEndpoint reports whether the component is the wire's source or
// destination, determined by endpoint proximity to the component center.
func (d *Detector) ownsEndpoint(wire core.RoutedWire, comp core.ComponentBounds) bool {
	center := comp.Bounds.Center()
	tol := d.cfg.EndpointTolerance + geometry.Max(comp.Bounds.Width, comp.Bounds.Height)/2 + d.cfg.ComponentBuffer
	return geometry.WithinDistance(wire.Start, center, tol) ||
		geometry.WithinDistance(wire.End, center, tol)
}

// WirePair classifies every segment-pair intersection between two wires.
//
// Wires sharing an endpoint within the endpoint tolerance form a junction,
// which is not a defect. Otherwise collinear overlapping segments score the
// maximum severity and transversal crossings slightly less.
func (d *Detector) WirePair(a, b core.RoutedWire) []core.WireIntersection {
	shared, sharedPoint := d.sharedEndpoint(a, b)

	var found []core.WireIntersection
	seen := make(map[core.Point]bool)

	record := func(p core.Point, t core.IntersectionType, severity float64) {
		if seen[p] {
			return
		}
		seen[p] = true
		found = append(found, core.WireIntersection{
			WireID1:  a.ID,
			WireID2:  b.ID,
			Point:    p,
			Type:     t,
			Severity: severity,
		})
	}

	for _, sa := range a.Segments {
		for _, sb := range b.Segments {
			if p, ok := geometry.CollinearOverlap(sa, sb); ok {
				if shared && geometry.WithinDistance(p, sharedPoint, d.cfg.EndpointTolerance) {
					record(sharedPoint, core.IntersectionJunction, d.cfg.JunctionSeverity)
				} else {
					record(p, core.IntersectionOverlap, d.cfg.OverlapSeverity)
				}
				continue
			}
			p, ok := geometry.SegmentIntersection(sa, sb)
			if !ok {
				continue
			}
			if shared && geometry.WithinDistance(p, sharedPoint, d.cfg.EndpointTolerance) {
				record(sharedPoint, core.IntersectionJunction, d.cfg.JunctionSeverity)
				continue
			}
			record(p, core.IntersectionCrossing, d.cfg.CrossingSeverity)
		}
	}

	return found
}

// sharedEndpoint reports whether the wires share an endpoint within the
// endpoint tolerance, and which point it is.
func (d *Detector) sharedEndpoint(a, b core.RoutedWire) (bool, core.Point) {
	for _, pa := range []core.Point{a.Start, a.End} {
		for _, pb := range []core.Point{b.Start, b.End} {
			if geometry.WithinDistance(pa, pb, d.cfg.EndpointTolerance) {
				return true, pa
			}
		}
	}
	return false, core.Point{}
}

// intersectionResult converts a wire-wire intersection into a collision
// report. Junctions map to low severity, crossings to medium, overlaps to
// high.
func intersectionResult(x core.WireIntersection) core.CollisionResult {
	severity := core.SeverityMedium
	switch x.Type {
	case core.IntersectionJunction:
		severity = core.SeverityLow
	case core.IntersectionOverlap:
		severity = core.SeverityHigh
	}

	return core.CollisionResult{
		HasCollision:  true,
		Points:        []core.Point{x.Point},
		AffectedWires: []string{x.WireID1, x.WireID2},
		Severity:      severity,
		Description:   fmt.Sprintf("wires %s and %s: %s", x.WireID1, x.WireID2, x.Type),
	}
}
