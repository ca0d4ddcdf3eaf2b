package election

// Shape identifies which result a winner aggregate carries.
type Shape int

const (
	// ShapeWinners is a flat list of winning records.
	ShapeWinners Shape = iota
	// ShapePieChart is a per-party seat sum across states.
	ShapePieChart
	// ShapePartyTally is a per-party tally with state and alliance labels.
	ShapePartyTally
	// ShapeStateTally is one tally per (party, state, alliance) group.
	ShapeStateTally
)

func (s Shape) String() string {
	switch s {
	case ShapeWinners:
		return "winners"
	case ShapePieChart:
		return "pie_chart"
	case ShapePartyTally:
		return "party_tally"
	case ShapeStateTally:
		return "state_tally"
	default:
		return "unknown"
	}
}

// WinnerAggregate is the result of a winner aggregation. Only the field
// matching Shape is populated.
type WinnerAggregate struct {
	Shape   Shape
	Slices  []PieSlice
	Tallies []PartyTally
	Winners []Record
}

// Payload returns the populated result for encoding.
func (a WinnerAggregate) Payload() any {
	switch a.Shape {
	case ShapePieChart:
		return nonNil(a.Slices)
	case ShapePartyTally, ShapeStateTally:
		return nonNil(a.Tallies)
	default:
		return nonNil(a.Winners)
	}
}

// Len returns the number of rows in the result.
func (a WinnerAggregate) Len() int {
	switch a.Shape {
	case ShapePieChart:
		return len(a.Slices)
	case ShapePartyTally, ShapeStateTally:
		return len(a.Tallies)
	default:
		return len(a.Winners)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
