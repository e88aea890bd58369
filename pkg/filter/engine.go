package filter

import "marando/pkg/hikes"

// Engine binds the loaded table to the travel time flag captured at load
// time. It is safe for concurrent use because nothing it holds is mutated.
type Engine struct {
	base          *hikes.Table
	hasTravelTime bool
}

// NewEngine captures base and its travel time flag once.
func NewEngine(base *hikes.Table) *Engine {
	return &Engine{
		base:          base,
		hasTravelTime: base.HasTravelTime(),
	}
}

// Table returns the base table.
func (e *Engine) Table() *hikes.Table { return e.base }

// HasTravelTime reports whether the travel time control is enabled.
func (e *Engine) HasTravelTime() bool { return e.hasTravelTime }

// Defaults returns the initial control values.
func (e *Engine) Defaults() Criteria { return Defaults(e.base) }

// Apply filters the base table.
func (e *Engine) Apply(c Criteria) View {
	return Apply(e.base, e.hasTravelTime, c)
}
