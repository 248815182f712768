package itemtree

import (
	"testing"

	"github.com/sjinzh/slint/pkg/items"
)

type rowData struct {
	y float64
}

// buildRepeatedComponent returns a component whose root has one static
// child followed by a model-driven region. Each row instantiates a
// single-rectangle child component.
func buildRepeatedComponent(rows int) (*StaticComponent, *SliceModel[rowData]) {
	model := &SliceModel[rowData]{}
	for i := 0; i < rows; i++ {
		model.Rows = append(model.Rows, rowData{y: float64(i) * 20})
	}

	factory := func(row int) Component {
		cell := &items.Rectangle{Y: float64(row) * 20, Width: 100, Height: 20}
		return &StaticComponent{Tree: []Node{ItemNode(cell, 0, 0)}}
	}

	root := &items.Rectangle{Width: 100, Height: 100}
	header := &items.Rectangle{Width: 100, Height: 10}
	component := &StaticComponent{
		Tree: []Node{
			ItemNode(root, 2, 1),
			ItemNode(header, 0, 0),
			DynamicTreeNode(0),
		},
		Repeaters: []*Repeater{NewRepeater(model, factory)},
	}
	return component, model
}

func TestRepeaterInstantiatesOnePerRow(t *testing.T) {
	component, _ := buildRepeatedComponent(3)

	var repeated []Component
	VisitItems(component, func(owner Component, index int, item items.Item) {
		if owner != component {
			repeated = append(repeated, owner)
		}
	})

	if len(repeated) != 3 {
		t.Fatalf("expected 3 repeated child visits, got %d", len(repeated))
	}
	seen := make(map[Component]bool)
	for _, owner := range repeated {
		if seen[owner] {
			t.Fatal("a child component was visited twice")
		}
		seen[owner] = true
	}
}

func TestRepeaterShrinkDropsExcessComponents(t *testing.T) {
	component, model := buildRepeatedComponent(3)

	// First traversal materializes all three children.
	VisitItems(component, func(Component, int, items.Item) {})
	repeater := component.Repeaters[0]
	if repeater.Len() != 3 {
		t.Fatalf("expected 3 live components, got %d", repeater.Len())
	}
	survivor := repeater.ComponentAt(0)

	model.Rows = model.Rows[:1]

	count := 0
	VisitItems(component, func(owner Component, index int, item items.Item) {
		if owner != component {
			count++
			if owner != survivor {
				t.Fatal("the remaining row must keep its original component")
			}
		}
	})
	if count != 1 {
		t.Fatalf("expected 1 repeated child visit after shrink, got %d", count)
	}
	if repeater.Len() != 1 {
		t.Fatalf("expected 1 live component after shrink, got %d", repeater.Len())
	}
}

func TestRepeaterGrowAppendsNewRows(t *testing.T) {
	component, model := buildRepeatedComponent(1)

	VisitItems(component, func(Component, int, items.Item) {})
	repeater := component.Repeaters[0]
	first := repeater.ComponentAt(0)

	model.Rows = append(model.Rows, rowData{y: 20}, rowData{y: 40})
	repeater.EnsureUpdated()

	if repeater.Len() != 3 {
		t.Fatalf("expected 3 live components after grow, got %d", repeater.Len())
	}
	if repeater.ComponentAt(0) != first {
		t.Fatal("growing must not recreate existing components")
	}
}

func TestRepeaterVisitorReceivesChildComponentAsOwner(t *testing.T) {
	component, _ := buildRepeatedComponent(2)

	VisitItems(component, func(owner Component, index int, item items.Item) {
		static, ok := owner.(*StaticComponent)
		if !ok {
			t.Fatalf("unexpected component type %T", owner)
		}
		if static.Tree[index].Item() != item {
			t.Fatalf("index %d is not valid in the owning component", index)
		}
	})
}

func TestRepeaterWithNilModelIsEmpty(t *testing.T) {
	repeater := NewRepeater(nil, func(int) Component { return nil })
	repeater.EnsureUpdated()
	if repeater.Len() != 0 {
		t.Fatalf("expected no components, got %d", repeater.Len())
	}
}

func TestDynamicNodeWithoutRepeaterIsSkipped(t *testing.T) {
	root := &items.Rectangle{Width: 10, Height: 10}
	component := &StaticComponent{
		Tree: []Node{
			ItemNode(root, 1, 1),
			DynamicTreeNode(5),
		},
	}

	count := 0
	VisitItems(component, func(Component, int, items.Item) { count++ })
	if count != 1 {
		t.Fatalf("expected only the root visit, got %d", count)
	}
}
