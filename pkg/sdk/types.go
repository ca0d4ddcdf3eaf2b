package loksabha

import "github.com/kailas-cloud/loksabha/internal/domain/election"

// Record is one candidate in one constituency in one election year.
type Record struct {
	Year      int
	StateName string
	PCName    string
	PartyName string
	Alliance  string
	IsWinner  bool
	LogoURL   string
	// Extra holds dataset columns not modelled above.
	Extra map[string]any
}

// Filter selects records. Zero fields are not applied.
type Filter struct {
	Year      int
	StateName string
	PCName    string
}

// PieSlice is a party's seat count summed across states.
type PieSlice struct {
	PartyName string
	Seat      int
}

// PartyTally is a party's seat count with its state and alliance labels.
type PartyTally struct {
	PartyName string
	StateName string
	Seat      int
	Alliance  string
}

// Aggregate shapes.
const (
	ShapeWinners    = "winners"
	ShapePieChart   = "pie_chart"
	ShapePartyTally = "party_tally"
	ShapeStateTally = "state_tally"
)

// WinnerAggregate is the result of WinnerAggregate. Shape names the
// populated field.
type WinnerAggregate struct {
	Shape   string
	Slices  []PieSlice
	Tallies []PartyTally
	Winners []Record
}

// FilterOptions lists the distinct years and state names in the dataset.
type FilterOptions struct {
	Years      []int
	StateNames []string
}

// LogoEntry pairs a record's party name with its logo URL.
type LogoEntry struct {
	PartyName string
	LogoURL   string
}

// Logo is a party logo image.
type Logo struct {
	Abbreviation string
	ContentType  string
	Data         []byte
}

func (f Filter) query() election.Query {
	return election.Query{Year: f.Year, StateName: f.StateName, PCName: f.PCName}
}

func recordFromDomain(r *election.Record) Record {
	return Record{
		Year:      r.Year,
		StateName: r.StateName,
		PCName:    r.PCName,
		PartyName: r.PartyName,
		Alliance:  r.Alliance,
		IsWinner:  r.IsWinner,
		LogoURL:   r.LogoURL,
		Extra:     r.Extra,
	}
}

func recordToDomain(r *Record) election.Record {
	return election.Record{
		Year:      r.Year,
		StateName: r.StateName,
		PCName:    r.PCName,
		PartyName: r.PartyName,
		Alliance:  r.Alliance,
		IsWinner:  r.IsWinner,
		LogoURL:   r.LogoURL,
		Extra:     r.Extra,
	}
}

func recordsFromDomain(rs []election.Record) []Record {
	out := make([]Record, len(rs))
	for i := range rs {
		out[i] = recordFromDomain(&rs[i])
	}
	return out
}

func talliesFromDomain(ts []election.PartyTally) []PartyTally {
	out := make([]PartyTally, len(ts))
	for i, t := range ts {
		out[i] = PartyTally{PartyName: t.PartyName, StateName: t.StateName, Seat: t.Seat, Alliance: t.Alliance}
	}
	return out
}

func aggregateFromDomain(a election.WinnerAggregate) WinnerAggregate {
	out := WinnerAggregate{Shape: a.Shape.String()}
	switch a.Shape {
	case election.ShapePieChart:
		out.Slices = make([]PieSlice, len(a.Slices))
		for i, s := range a.Slices {
			out.Slices[i] = PieSlice{PartyName: s.PartyName, Seat: s.Seat}
		}
	case election.ShapePartyTally, election.ShapeStateTally:
		out.Tallies = talliesFromDomain(a.Tallies)
	default:
		out.Winners = recordsFromDomain(a.Winners)
	}
	return out
}

// ParseRecord builds a Record from a decoded dataset row keyed by the
// collection's column names ("year", "STATE NAME", "PC NAME", "PARTY NAME",
// "Alliance", "is_winner", "logo_url"). Other columns land in Extra.
func ParseRecord(m map[string]any) (Record, error) {
	r, err := election.RecordFromMap(m)
	if err != nil {
		return Record{}, err
	}
	return recordFromDomain(&r), nil
}
