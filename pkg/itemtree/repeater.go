package itemtree

// Model drives a repeated region: it reports how many child components
// the region currently needs. The model is trusted to report an
// accurate count; the repeater reconciles its instances to match.
type Model interface {
	RowCount() int
}

// SliceModel is a Model over a slice of row data.
type SliceModel[T any] struct {
	Rows []T
}

// RowCount returns the number of rows.
func (m *SliceModel[T]) RowCount() int {
	return len(m.Rows)
}

// ComponentFactory instantiates the child component for one model row.
// Generated code supplies it per repeated region.
type ComponentFactory func(row int) Component

// Repeater owns the child components of one dynamic (model-driven)
// subtree. Child components are created and destroyed with their
// repeated-region entry: shrinking the model drops the excess
// components, growing it instantiates new ones at the end.
type Repeater struct {
	model      Model
	factory    ComponentFactory
	components []Component
}

// NewRepeater creates a repeater for a region backed by model.
func NewRepeater(model Model, factory ComponentFactory) *Repeater {
	return &Repeater{model: model, factory: factory}
}

// EnsureUpdated reconciles the instantiated child components with the
// model's current row count.
func (r *Repeater) EnsureUpdated() {
	count := 0
	if r.model != nil {
		count = r.model.RowCount()
	}
	if count < 0 {
		count = 0
	}
	if count < len(r.components) {
		for i := count; i < len(r.components); i++ {
			r.components[i] = nil
		}
		r.components = r.components[:count]
		return
	}
	for row := len(r.components); row < count; row++ {
		r.components = append(r.components, r.factory(row))
	}
}

// Len returns the number of live child components.
func (r *Repeater) Len() int {
	return len(r.components)
}

// ComponentAt returns the live child component for a row.
func (r *Repeater) ComponentAt(row int) Component {
	return r.components[row]
}

// Visit reconciles with the model and re-enters every live child
// component at its root, in index order.
func (r *Repeater) Visit(visitor ItemVisitor) {
	r.EnsureUpdated()
	for _, component := range r.components {
		component.VisitChildrenItem(VisitRoot, visitor)
	}
}
