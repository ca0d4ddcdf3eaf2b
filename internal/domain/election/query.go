package election

import "github.com/kailas-cloud/loksabha/internal/domain/filter"

// Index field names shared by every document source.
const (
	FieldYear     = "year"
	FieldState    = "state"
	FieldPC       = "pc"
	FieldParty    = "party"
	FieldAlliance = "alliance"
	FieldWinner   = "is_winner"
)

// DocumentKeys maps index field names to document keys.
var DocumentKeys = map[string]string{
	FieldYear:     KeyYear,
	FieldState:    KeyStateName,
	FieldPC:       KeyPCName,
	FieldParty:    KeyPartyName,
	FieldAlliance: KeyAlliance,
	FieldWinner:   KeyIsWinner,
}

// Query is the optional filter set accepted by the engine.
// Zero values are not applied.
type Query struct {
	Year        int
	StateName   string
	PCName      string
	WinnersOnly bool
}

// IsEmpty reports whether no filter is set.
func (q Query) IsEmpty() bool {
	return q.Year == 0 && q.StateName == "" && q.PCName == "" && !q.WinnersOnly
}

// Winners returns q restricted to winning records.
func (q Query) Winners() Query {
	q.WinnersOnly = true
	return q
}

// Expression translates the query into a backend-neutral filter.
func (q Query) Expression() filter.Expression {
	var conds []filter.Condition
	if q.Year != 0 {
		conds = append(conds, filter.Equal(FieldYear, float64(q.Year)))
	}
	if q.PCName != "" {
		conds = append(conds, filter.Match(FieldPC, q.PCName))
	}
	if q.StateName != "" {
		conds = append(conds, filter.Match(FieldState, q.StateName))
	}
	if q.WinnersOnly {
		conds = append(conds, filter.Equal(FieldWinner, 1))
	}
	return filter.And(conds...)
}
