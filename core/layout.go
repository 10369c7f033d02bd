// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/layout.go
// Summary: Constraint-based layout tree resolved into named screen zones.
// Usage: Build a tree with Leaf/Split once per view (or cache it), then
// Resolve against the frame bounds and look zones up by name.

package core

// Direction selects the axis a split node divides its area along.
type Direction uint8

const (
	// Horizontal lays children out left to right.
	Horizontal Direction = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// ConstraintKind discriminates the sizing policies a slot can carry.
type ConstraintKind uint8

const (
	// ConstraintFixed grants an absolute number of cells.
	ConstraintFixed ConstraintKind = iota
	// ConstraintPercent grants a percentage of the parent's extent.
	ConstraintPercent
	// ConstraintFill shares whatever is left after fixed and percent slots.
	ConstraintFill
)

// Constraint is one slot's sizing directive.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Fixed returns a constraint granting n cells (clamped at zero).
func Fixed(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{Kind: ConstraintFixed, Value: n}
}

// Percent returns a constraint granting p percent of the parent extent,
// with p clamped to 0..100.
func Percent(p int) Constraint {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return Constraint{Kind: ConstraintPercent, Value: p}
}

// Fill returns a constraint that shares the leftover space evenly with the
// other Fill slots.
func Fill() Constraint {
	return Constraint{Kind: ConstraintFill}
}

// Slot pairs a constraint with a child node inside a split.
type Slot struct {
	Constraint Constraint
	Node       *LayoutNode
}

// NewSlot builds a slot.
func NewSlot(c Constraint, node *LayoutNode) Slot {
	return Slot{Constraint: c, Node: node}
}

// LayoutNode is a named region of the screen. A node with children splits
// its content area along Direction; a node without children is a leaf.
// Resolution never mutates the tree, so one tree can be resolved against
// any number of candidate rects.
type LayoutNode struct {
	Name      string
	Padding   Padding
	Direction Direction
	Children  []Slot
}

// Leaf returns a childless node.
func Leaf(name string) *LayoutNode {
	return &LayoutNode{Name: name}
}

// Split returns a node dividing its content area among children.
func Split(name string, dir Direction, children ...Slot) *LayoutNode {
	return &LayoutNode{Name: name, Direction: dir, Children: children}
}

// WithPadding sets the node's padding and returns the node for chaining.
func (n *LayoutNode) WithPadding(p Padding) *LayoutNode {
	n.Padding = p
	return n
}

// Zone is one resolved region: the node's name and its content rect.
type Zone struct {
	Name string
	Area Rect
}

// ResolvedLayout is the ordered list of zones produced by one Resolve
// call, in pre-order: parent before children, children in declaration
// order.
type ResolvedLayout struct {
	zones []Zone
}

// Zones returns the resolved zones in traversal order.
func (l ResolvedLayout) Zones() []Zone { return l.zones }

// Area returns the rect recorded for name. When several nodes share a
// name, the one resolved last wins; the scan runs from the end backward.
// This shadowing rule lets a subtree reuse a generic name without
// colliding with an outer region.
func (l ResolvedLayout) Area(name string) (Rect, bool) {
	for i := len(l.zones) - 1; i >= 0; i-- {
		if l.zones[i].Name == name {
			return l.zones[i].Area, true
		}
	}
	return Rect{}, false
}

// Resolve computes the zone list for this tree within root. It is pure and
// total: degenerate (zero-area) rects simply produce zero-size zones.
func (n *LayoutNode) Resolve(root Rect) ResolvedLayout {
	zones := make([]Zone, 0, 8)
	resolveNode(n, root, &zones)
	return ResolvedLayout{zones: zones}
}

// SplitSizes divides total cells among constraints exactly the way a
// split node divides its axis. Widgets that column-partition a region,
// such as a table, resolve through this so their arithmetic cannot
// drift from the layout tree's.
func SplitSizes(total int, constraints []Constraint) []int {
	slots := make([]Slot, len(constraints))
	for i, c := range constraints {
		slots[i] = Slot{Constraint: c}
	}
	return resolveSizes(total, slots)
}

func resolveNode(n *LayoutNode, area Rect, zones *[]Zone) {
	content := n.Padding.Apply(area)
	*zones = append(*zones, Zone{Name: n.Name, Area: content})
	if len(n.Children) == 0 {
		return
	}

	total := content.Width
	if n.Direction == Vertical {
		total = content.Height
	}
	sizes := resolveSizes(total, n.Children)
	rects := splitArea(content, n.Direction, sizes)
	for i, slot := range n.Children {
		if slot.Node != nil {
			resolveNode(slot.Node, rects[i], zones)
		}
	}
}

// resolveSizes distributes total cells over the slots in three passes:
// fixed slots first, then percent slots computed against the original
// total, then fill slots sharing what remains. Allocation is first come,
// first served left to right, so a percent slot can legitimately receive
// less than its nominal share (or zero) when earlier slots exhausted the
// budget. The sizes always sum to exactly total; when nothing is marked
// Fill, any leftover goes to the last slot whatever its constraint.
func resolveSizes(total int, slots []Slot) []int {
	sizes := make([]int, len(slots))
	if len(slots) == 0 {
		return sizes
	}

	remaining := total
	for i, s := range slots {
		if s.Constraint.Kind != ConstraintFixed {
			continue
		}
		grant := min(max(0, s.Constraint.Value), remaining)
		sizes[i] = grant
		remaining -= grant
	}

	for i, s := range slots {
		if s.Constraint.Kind != ConstraintPercent {
			continue
		}
		requested := max(0, total*s.Constraint.Value/100)
		grant := min(requested, remaining)
		sizes[i] = grant
		remaining -= grant
	}

	fills := 0
	for _, s := range slots {
		if s.Constraint.Kind == ConstraintFill {
			fills++
		}
	}
	if fills > 0 {
		share := remaining / fills
		extra := remaining % fills
		seen := 0
		for i, s := range slots {
			if s.Constraint.Kind != ConstraintFill {
				continue
			}
			sizes[i] = share
			if seen < extra {
				sizes[i]++
			}
			seen++
		}
	} else if remaining > 0 {
		sizes[len(sizes)-1] += remaining
	}
	return sizes
}

// splitArea lays sizes out contiguously along dir inside area, full extent
// along the perpendicular axis.
func splitArea(area Rect, dir Direction, sizes []int) []Rect {
	rects := make([]Rect, len(sizes))
	cursor := area.X
	if dir == Vertical {
		cursor = area.Y
	}
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: cursor, Y: area.Y, Width: size, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: cursor, Width: area.Width, Height: size}
		}
		cursor += size
	}
	return rects
}
