// Package junction tracks where wires meet, infers joint types from the
// number of connected wires, and prunes redundant collinear joints. It keeps
// its own segment index and is independent of the routing grid.
package junction

import (
	"fmt"

	"wiregrid/core"
	"wiregrid/geometry"
)

// Config carries the manager's tunables.
type Config struct {
	// Tolerance is the distance within which an intersection point matches
	// an existing junction.
	Tolerance int
	// CollinearTolerance is the cross-product area below which two segments
	// meeting at a junction count as a straight pass-through.
	CollinearTolerance int
}

// DefaultConfig returns the default junction configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:          5,
		CollinearTolerance: 1,
	}
}

// entry wraps a junction with bookkeeping the public type doesn't carry.
type entry struct {
	junction       core.Junction
	typeOverridden bool
}

// Manager maintains junction records for one diagram.
type Manager struct {
	cfg    Config
	wires  map[string][]core.WireSegment
	order  []string // wire insertion order, for deterministic iteration
	joints map[string]*entry
	jorder []string
	nextID int
}

// NewManager creates an empty junction manager.
func NewManager(cfg Config) *Manager {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}
	if cfg.CollinearTolerance <= 0 {
		cfg.CollinearTolerance = DefaultConfig().CollinearTolerance
	}
	return &Manager{
		cfg:    cfg,
		wires:  make(map[string][]core.WireSegment),
		joints: make(map[string]*entry),
	}
}

// AddWire indexes a wire's segments and creates junctions for any new
// intersection with already-indexed wires.
func (m *Manager) AddWire(wireID string, segments []core.WireSegment) {
	if _, exists := m.wires[wireID]; !exists {
		m.order = append(m.order, wireID)
	}
	m.wires[wireID] = append([]core.WireSegment(nil), segments...)
	m.reconcile(wireID)
}

// UpdateWire replaces a wire's segments and recomputes its intersections.
func (m *Manager) UpdateWire(wireID string, segments []core.WireSegment) {
	if _, exists := m.wires[wireID]; !exists {
		m.AddWire(wireID, segments)
		return
	}
	m.wires[wireID] = append([]core.WireSegment(nil), segments...)
	m.detach(wireID)
	m.reconcile(wireID)
}

// RemoveWire drops a wire from the index and prunes junctions left with
// fewer than two connected wires.
func (m *Manager) RemoveWire(wireID string) {
	if _, exists := m.wires[wireID]; !exists {
		return
	}
	delete(m.wires, wireID)
	for i, id := range m.order {
		if id == wireID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.detach(wireID)
}

// FindIntersections computes every pairwise wire intersection. Orthogonal
// segment pairs use the fast range test; anything else falls back to the
// general parametric intersection.
func (m *Manager) FindIntersections() []core.WireIntersection {
	var found []core.WireIntersection
	for i := 0; i < len(m.order); i++ {
		for j := i + 1; j < len(m.order); j++ {
			found = append(found, m.intersect(m.order[i], m.order[j])...)
		}
	}
	return found
}

// PendingJunctions returns the intersection points that have no existing
// junction within tolerance and therefore need one.
func (m *Manager) PendingJunctions() []core.WireIntersection {
	var pending []core.WireIntersection
	for _, x := range m.FindIntersections() {
		if _, ok := m.junctionNear(x.Point); !ok {
			pending = append(pending, x)
		}
	}
	return pending
}

// CreateJunction records a joint at the given position. The junction type is
// inferred from the connected-wire count unless overridden with a non-empty
// jtype.
func (m *Manager) CreateJunction(position core.Point, connectedWires []string, jtype core.JunctionType) core.Junction {
	m.nextID++
	e := &entry{
		junction: core.Junction{
			ID:             fmt.Sprintf("j%d", m.nextID),
			Position:       position,
			ConnectedWires: append([]string(nil), connectedWires...),
		},
	}
	if jtype != "" {
		e.junction.Type = jtype
		e.typeOverridden = true
	} else {
		e.junction.Type = inferType(len(connectedWires))
	}
	e.junction.Style = defaultStyle(e.junction.Type)

	m.joints[e.junction.ID] = e
	m.jorder = append(m.jorder, e.junction.ID)
	return e.junction
}

// MoveJunction repositions an unlocked junction.
func (m *Manager) MoveJunction(id string, position core.Point) error {
	e, ok := m.joints[id]
	if !ok {
		return fmt.Errorf("junction %s not found", id)
	}
	if e.junction.Locked {
		return fmt.Errorf("junction %s is locked", id)
	}
	e.junction.Position = position
	return nil
}

// RemoveJunction deletes a junction record.
func (m *Manager) RemoveJunction(id string) bool {
	if _, ok := m.joints[id]; !ok {
		return false
	}
	delete(m.joints, id)
	for i, jid := range m.jorder {
		if jid == id {
			m.jorder = append(m.jorder[:i], m.jorder[i+1:]...)
			break
		}
	}
	return true
}

// LockJunction marks a junction as locked; locked junctions cannot be moved
// or auto-pruned.
func (m *Manager) LockJunction(id string, locked bool) error {
	e, ok := m.joints[id]
	if !ok {
		return fmt.Errorf("junction %s not found", id)
	}
	e.junction.Locked = locked
	return nil
}

// Junction returns a copy of the junction with the given id.
func (m *Manager) Junction(id string) (core.Junction, bool) {
	e, ok := m.joints[id]
	if !ok {
		return core.Junction{}, false
	}
	return cloneJunction(e.junction), true
}

// Junctions returns copies of all junctions in creation order.
func (m *Manager) Junctions() []core.Junction {
	out := make([]core.Junction, 0, len(m.jorder))
	for _, id := range m.jorder {
		out = append(out, cloneJunction(m.joints[id].junction))
	}
	return out
}

// OptimizeJunctions removes every unlocked 2-wire junction whose two
// connecting segments are collinear: such a joint is a redundant
// pass-through. Returns the number of junctions removed.
func (m *Manager) OptimizeJunctions() int {
	removed := 0
	for _, id := range append([]string(nil), m.jorder...) {
		e := m.joints[id]
		if e == nil || e.junction.Locked || len(e.junction.ConnectedWires) != 2 {
			continue
		}
		if m.passThrough(e.junction) {
			m.RemoveJunction(id)
			removed++
		}
	}
	return removed
}

// passThrough checks whether the two far endpoints of the segments meeting
// at the junction form a straight line through it.
func (m *Manager) passThrough(j core.Junction) bool {
	a, okA := m.farEndpoint(j.ConnectedWires[0], j.Position)
	b, okB := m.farEndpoint(j.ConnectedWires[1], j.Position)
	if !okA || !okB {
		return false
	}
	return geometry.Abs(geometry.Cross(j.Position, a, b)) <= m.cfg.CollinearTolerance
}

// farEndpoint finds the endpoint of the wire's segment touching the junction
// that is farthest from it.
func (m *Manager) farEndpoint(wireID string, p core.Point) (core.Point, bool) {
	for _, seg := range m.wires[wireID] {
		if !nearSegment(p, seg, m.cfg.Tolerance) {
			continue
		}
		if geometry.ManhattanDistance(p, seg.Start) >= geometry.ManhattanDistance(p, seg.End) {
			return seg.Start, true
		}
		return seg.End, true
	}
	return core.Point{}, false
}

// reconcile recomputes intersections between the changed wire and all others,
// attaching to existing junctions within tolerance and creating new ones.
func (m *Manager) reconcile(wireID string) {
	for _, other := range m.order {
		if other == wireID {
			continue
		}
		for _, x := range m.intersect(wireID, other) {
			if e, ok := m.junctionNear(x.Point); ok {
				m.attach(e, wireID)
				m.attach(e, other)
				continue
			}
			m.CreateJunction(x.Point, []string{x.WireID1, x.WireID2}, "")
		}
	}
}

// detach removes the wire from every junction and prunes junctions left with
// fewer than two wires, unless locked.
func (m *Manager) detach(wireID string) {
	for _, id := range append([]string(nil), m.jorder...) {
		e := m.joints[id]
		wires := e.junction.ConnectedWires
		for i, wid := range wires {
			if wid == wireID {
				e.junction.ConnectedWires = append(wires[:i], wires[i+1:]...)
				if !e.typeOverridden {
					e.junction.Type = inferType(len(e.junction.ConnectedWires))
					e.junction.Style = defaultStyle(e.junction.Type)
				}
				break
			}
		}
		if len(e.junction.ConnectedWires) < 2 && !e.junction.Locked {
			m.RemoveJunction(id)
		}
	}
}

// attach adds a wire to a junction's connected set, re-inferring the type
// when it was not explicitly overridden.
func (m *Manager) attach(e *entry, wireID string) {
	for _, wid := range e.junction.ConnectedWires {
		if wid == wireID {
			return
		}
	}
	e.junction.ConnectedWires = append(e.junction.ConnectedWires, wireID)
	if !e.typeOverridden {
		e.junction.Type = inferType(len(e.junction.ConnectedWires))
		e.junction.Style = defaultStyle(e.junction.Type)
	}
}

// intersect computes the intersection points between two indexed wires.
func (m *Manager) intersect(idA, idB string) []core.WireIntersection {
	var found []core.WireIntersection
	seen := make(map[core.Point]bool)

	for _, sa := range m.wires[idA] {
		for _, sb := range m.wires[idB] {
			p, ok := geometry.OrthogonalIntersection(sa, sb)
			if !ok {
				// Collinear contact (wires meeting end to end) yields the
				// midpoint of the shared region; otherwise fall back to the
				// general parametric test. Truly parallel lines have no
				// intersection point and are skipped.
				p, ok = geometry.CollinearOverlap(sa, sb)
			}
			if !ok {
				p, ok = geometry.SegmentIntersection(sa, sb)
			}
			if !ok || seen[p] {
				continue
			}
			seen[p] = true
			found = append(found, core.WireIntersection{
				WireID1: idA,
				WireID2: idB,
				Point:   p,
				Type:    core.IntersectionJunction,
			})
		}
	}
	return found
}

// junctionNear finds a junction within tolerance of the point.
func (m *Manager) junctionNear(p core.Point) (*entry, bool) {
	for _, id := range m.jorder {
		e := m.joints[id]
		if geometry.WithinDistance(e.junction.Position, p, m.cfg.Tolerance) {
			return e, true
		}
	}
	return nil, false
}

// cloneJunction copies a junction so callers cannot mutate manager state.
func cloneJunction(j core.Junction) core.Junction {
	j.ConnectedWires = append([]string(nil), j.ConnectedWires...)
	return j
}

// inferType maps a connected-wire count to a junction type:
// 2 wires form a corner, 3 a T, 4 a cross; anything else is a terminal.
func inferType(wireCount int) core.JunctionType {
	switch wireCount {
	case 2:
		return core.JunctionCorner
	case 3:
		return core.JunctionTee
	case 4:
		return core.JunctionCross
	default:
		return core.JunctionTerminal
	}
}

// defaultStyle picks the marker for a junction type.
func defaultStyle(t core.JunctionType) core.JunctionStyle {
	switch t {
	case core.JunctionTee, core.JunctionCross:
		return core.StyleCircle
	case core.JunctionTerminal:
		return core.StyleSquare
	default:
		return core.StyleDiamond
	}
}

// nearSegment reports whether a point lies on or within tolerance of an
// orthogonal segment.
func nearSegment(p core.Point, s core.WireSegment, tol int) bool {
	if geometry.PointOnSegment(p, s) {
		return true
	}
	return geometry.WithinDistance(p, s.Start, tol) || geometry.WithinDistance(p, s.End, tol)
}
