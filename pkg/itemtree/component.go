package itemtree

import "github.com/sjinzh/slint/pkg/items"

// VisitRoot is the index passed to VisitChildrenItem to visit the root
// item itself rather than the children of an item.
const VisitRoot = -1

// ItemVisitor is invoked for every concrete item reached during
// traversal. component is the component the item belongs to, which
// is not necessarily the component traversal started from: crossing a
// dynamic subtree switches it to the dynamically instantiated child.
// index is the item's position in that component's tree array, valid
// for further VisitChildrenItem calls on component.
type ItemVisitor func(component Component, index int, item items.Item)

// Component is the contract every compiled UI unit implements. A
// component owns its items and its static tree encoding; the runtime
// addresses both only through this interface.
type Component interface {
	// VisitChildrenItem visits the direct children of the item at
	// index. Passing VisitRoot visits the root item itself, which is
	// the uniform re-entry point used when crossing into child
	// components.
	VisitChildrenItem(index int, visitor ItemVisitor)

	// LayoutInfo returns the component's aggregate layout constraints.
	LayoutInfo() items.LayoutInfo

	// ComputeLayout resolves item geometries from current constraints.
	// It is idempotent: repeated calls with unchanged inputs produce
	// unchanged geometries.
	ComputeLayout()
}
