package election

// SeatGroup is one (party, state, alliance) group with its record count.
type SeatGroup struct {
	PartyName  string
	StateName  string
	Alliance   string
	TotalSeats int
}

// PartyTally is a party's seat count with its state and alliance labels.
type PartyTally struct {
	PartyName string `json:"party_name"`
	StateName string `json:"state_name"`
	Seat      int    `json:"seat"`
	Alliance  string `json:"alliance"`
}

// PieSlice is a party's seat count summed across states.
type PieSlice struct {
	PartyName string `json:"party_name"`
	Seat      int    `json:"seat"`
}

// FilterOptions lists the distinct values offered as filters.
type FilterOptions struct {
	Years      []int    `json:"years"`
	StateNames []string `json:"state_name"`
}

// LogoEntry pairs a party name with the logo URL of one record.
type LogoEntry struct {
	PartyName string `json:"PARTY NAME"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// LogoContentType is the media type of party logo assets.
const LogoContentType = "image/png"

// Logo is a party logo asset.
type Logo struct {
	Abbreviation string
	Data         []byte
}
