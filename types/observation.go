package types

import "time"

// Observation is a single recorded measurement of a field.
type Observation struct {
	Value      Value
	ObservedAt time.Time
}

// ObservationCell holds the full observation history of a field. Records may
// store a cell instead of a scalar; formula evaluation resolves the cell to
// its dominant value first.
type ObservationCell struct {
	observations []Observation
}

// NewObservationCell creates a cell pre-loaded with the given observations,
// kept in insertion order.
func NewObservationCell(obs ...Observation) *ObservationCell {
	c := &ObservationCell{}
	c.observations = append(c.observations, obs...)
	return c
}

// Add appends an observation. Insertion order is significant: among
// observations with equal timestamps the one added last wins resolution.
func (c *ObservationCell) Add(v Value, at time.Time) {
	c.observations = append(c.observations, Observation{Value: v, ObservedAt: at})
}

// Len returns the number of observations in the cell.
func (c *ObservationCell) Len() int { return len(c.observations) }

// Resolve selects the dominant value: the most recent observation, ties
// broken by insertion order (the later insertion wins). An empty cell
// resolves to NULL.
func (c *ObservationCell) Resolve() Value {
	if len(c.observations) == 0 {
		return Null()
	}
	best := c.observations[0]
	for _, o := range c.observations[1:] {
		// >= keeps the later-inserted observation on equal timestamps.
		if !o.ObservedAt.Before(best.ObservedAt) {
			best = o
		}
	}
	return best.Value
}

// ResolveField normalizes one record slot to a Value: observation cells are
// resolved to their dominant value, raw Go scalars are lifted via FromAny.
func ResolveField(raw interface{}) Value {
	if cell, ok := raw.(*ObservationCell); ok {
		return cell.Resolve()
	}
	return FromAny(raw)
}
