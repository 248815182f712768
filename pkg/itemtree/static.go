package itemtree

import "github.com/sjinzh/slint/pkg/items"

// StaticComponent is a ready-made Component over a static tree array
// and a set of repeaters, one per dynamic placeholder index. Compiled
// components embed it; tests build it directly.
type StaticComponent struct {
	// Tree is the static item tree array. The root item is at index 0.
	Tree []Node

	// Repeaters maps a dynamic node's index to the repeater owning the
	// region's child components.
	Repeaters []*Repeater

	// Layout optionally computes the component's layout; LayoutInfo
	// falls back to aggregating the root item when nil.
	Layout LayoutDelegate
}

// LayoutDelegate hooks component layout to the enclosing layout engine.
type LayoutDelegate interface {
	LayoutInfo() items.LayoutInfo
	ComputeLayout()
}

// VisitChildrenItem visits the direct children of the item at index,
// expanding dynamic placeholders through the matching repeater.
func (c *StaticComponent) VisitChildrenItem(index int, visitor ItemVisitor) {
	VisitItemTree(c, c.Tree, index, visitor, c.visitDynamic)
}

func (c *StaticComponent) visitDynamic(visitor ItemVisitor, dynamicIndex int) {
	if dynamicIndex < 0 || dynamicIndex >= len(c.Repeaters) {
		return
	}
	if repeater := c.Repeaters[dynamicIndex]; repeater != nil {
		repeater.Visit(visitor)
	}
}

// LayoutInfo returns the delegate's constraints, or the root item's
// when no delegate is set.
func (c *StaticComponent) LayoutInfo() items.LayoutInfo {
	if c.Layout != nil {
		return c.Layout.LayoutInfo()
	}
	if len(c.Tree) > 0 && c.Tree[0].Kind() == NodeItem {
		return c.Tree[0].Item().LayoutingInfo()
	}
	return items.DefaultLayoutInfo()
}

// ComputeLayout delegates to the layout engine when one is set.
// Without a delegate the static geometries are already resolved and
// the call is a no-op, which is trivially idempotent.
func (c *StaticComponent) ComputeLayout() {
	if c.Layout != nil {
		c.Layout.ComputeLayout()
	}
}
