// Package itemtree implements the static encoding of a component's
// item tree and the visitor engine that traverses it, including
// re-entry into dynamically instantiated child components.
package itemtree

import "github.com/sjinzh/slint/pkg/items"

// NodeKind discriminates the two kinds of tree nodes.
type NodeKind uint8

const (
	// NodeItem is a static item node.
	NodeItem NodeKind = iota
	// NodeDynamicTree is a placeholder for items instantiated
	// according to a model, each in their own child component.
	NodeDynamicTree
)

// Node is one entry of a component's static item tree array.
//
// The array encodes a tree by construction: the root item is at index
// 0, a node's children occupy the contiguous range
// [ChildrenIndex, ChildrenIndex+ChildrenCount), and children always
// come after their parent. The compiler guarantees validity; the
// traversal engine does not re-validate on the hot path.
type Node struct {
	kind NodeKind

	// Item node fields.
	item          items.Item
	childrenCount int
	childrenIndex int

	// Dynamic node field: the index passed to the component's dynamic
	// visit callback.
	dynamicIndex int
}

// ItemNode builds a static item node.
func ItemNode(item items.Item, childrenCount, childrenIndex int) Node {
	return Node{
		kind:          NodeItem,
		item:          item,
		childrenCount: childrenCount,
		childrenIndex: childrenIndex,
	}
}

// DynamicTreeNode builds a placeholder node for a repeated region.
func DynamicTreeNode(dynamicIndex int) Node {
	return Node{kind: NodeDynamicTree, dynamicIndex: dynamicIndex}
}

// Kind returns the node's discriminator.
func (n Node) Kind() NodeKind {
	return n.kind
}

// Item returns the item of an item node, nil otherwise.
func (n Node) Item() items.Item {
	return n.item
}

// Children returns the child range of an item node.
func (n Node) Children() (index, count int) {
	return n.childrenIndex, n.childrenCount
}

// DynamicIndex returns the repeated-region identifier of a dynamic
// node.
func (n Node) DynamicIndex() int {
	return n.dynamicIndex
}
