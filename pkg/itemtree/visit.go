package itemtree

import "github.com/sjinzh/slint/pkg/items"

// VisitDynamicFunc resolves a dynamic placeholder during traversal. The
// implementation must locate or instantiate the child components of the
// repeated region identified by dynamicIndex and re-enter each of them
// through VisitChildrenItem(VisitRoot, visitor), in model index order.
type VisitDynamicFunc func(visitor ItemVisitor, dynamicIndex int)

// VisitItemTree visits the direct children of the item at index in the
// given static tree, invoking visitor for item nodes and visitDynamic
// for dynamic placeholders. index VisitRoot visits the root item
// itself.
//
// component is the component the tree belongs to; it is what the
// visitor receives so that item indices stay meaningful across
// component boundaries. The tree is trusted to be well formed.
func VisitItemTree(component Component, tree []Node, index int, visitor ItemVisitor, visitDynamic VisitDynamicFunc) {
	if index == VisitRoot {
		if len(tree) == 0 {
			return
		}
		root := tree[0]
		if root.Kind() == NodeItem {
			visitor(component, 0, root.Item())
		}
		return
	}

	node := tree[index]
	if node.Kind() != NodeItem {
		return
	}
	childrenIndex, childrenCount := node.Children()
	for i := childrenIndex; i < childrenIndex+childrenCount; i++ {
		child := tree[i]
		switch child.Kind() {
		case NodeItem:
			visitor(component, i, child.Item())
		case NodeDynamicTree:
			if visitDynamic != nil {
				visitDynamic(visitor, child.DynamicIndex())
			}
		}
	}
}

// VisitItems performs a full depth-first traversal of the component,
// visiting every item exactly once, parents before their descendants.
// Dynamic subtrees are expanded through the component's own
// VisitChildrenItem implementation, so the visitor observes items of
// nested child components with their true owning component.
func VisitItems(component Component, visitor ItemVisitor) {
	var descend ItemVisitor
	descend = func(owner Component, index int, item items.Item) {
		visitor(owner, index, item)
		owner.VisitChildrenItem(index, descend)
	}
	component.VisitChildrenItem(VisitRoot, descend)
}
