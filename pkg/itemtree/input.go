package itemtree

import (
	"github.com/sjinzh/slint/pkg/graphics"
	"github.com/sjinzh/slint/pkg/items"
)

// DeliverMouseEvent walks the component's item tree and forwards the
// event to every item whose geometry contains the position, translated
// into each item's local coordinate space. event.Position is relative
// to the component's root frame.
//
// Traversal and delivery are ordinary nested calls on the single
// logical thread; item handlers must not re-enter traversal.
func DeliverMouseEvent(component Component, event items.MouseEvent) {
	component.VisitChildrenItem(VisitRoot, func(owner Component, index int, item items.Item) {
		deliverMouseEvent(owner, index, item, graphics.Point{}, event)
	})
}

// deliverMouseEvent handles one item and recurses into its children.
// origin is the absolute position of the item's parent frame.
func deliverMouseEvent(owner Component, index int, item items.Item, origin graphics.Point, event items.MouseEvent) {
	geometry := item.Geometry().Translate(origin.X, origin.Y)
	if geometry.Contains(event.Position) {
		item.InputEvent(items.MouseEvent{
			Position: event.Position.Sub(geometry.Origin()),
			Kind:     event.Kind,
		})
	}

	// Children are positioned relative to this item. They may extend
	// outside the parent's bounds, so recurse unconditionally.
	childOrigin := geometry.Origin()
	owner.VisitChildrenItem(index, func(childOwner Component, childIndex int, child items.Item) {
		deliverMouseEvent(childOwner, childIndex, child, childOrigin, event)
	})
}
