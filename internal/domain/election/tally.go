package election

import "sort"

type groupKey struct {
	party, state, alliance string
}

// GroupSeats counts records per (party, state, alliance) in first-seen order.
func GroupSeats(records []Record) []SeatGroup {
	index := make(map[groupKey]int)
	groups := make([]SeatGroup, 0)
	for _, r := range records {
		k := groupKey{r.PartyName, r.StateName, r.Alliance}
		if i, ok := index[k]; ok {
			groups[i].TotalSeats++
			continue
		}
		index[k] = len(groups)
		groups = append(groups, SeatGroup{
			PartyName:  r.PartyName,
			StateName:  r.StateName,
			Alliance:   r.Alliance,
			TotalSeats: 1,
		})
	}
	return groups
}

// CollapsePie sums seats per party across states, in first-seen party order.
func CollapsePie(groups []SeatGroup) []PieSlice {
	index := make(map[string]int)
	slices := make([]PieSlice, 0)
	for _, g := range groups {
		if i, ok := index[g.PartyName]; ok {
			slices[i].Seat += g.TotalSeats
			continue
		}
		index[g.PartyName] = len(slices)
		slices = append(slices, PieSlice{PartyName: g.PartyName, Seat: g.TotalSeats})
	}
	return slices
}

// CollapseByParty sums seats per party across states. The first state seen
// for a party is kept; the alliance is overwritten by every later group.
func CollapseByParty(groups []SeatGroup) []PartyTally {
	index := make(map[string]int)
	tallies := make([]PartyTally, 0)
	for _, g := range groups {
		if i, ok := index[g.PartyName]; ok {
			tallies[i].Seat += g.TotalSeats
			tallies[i].Alliance = g.Alliance
			continue
		}
		index[g.PartyName] = len(tallies)
		tallies = append(tallies, PartyTally{
			PartyName: g.PartyName,
			StateName: g.StateName,
			Seat:      g.TotalSeats,
			Alliance:  g.Alliance,
		})
	}
	return tallies
}

// StateTallies emits one tally per group without collapsing.
func StateTallies(groups []SeatGroup) []PartyTally {
	tallies := make([]PartyTally, 0, len(groups))
	for _, g := range groups {
		tallies = append(tallies, PartyTally{
			PartyName: g.PartyName,
			StateName: g.StateName,
			Seat:      g.TotalSeats,
			Alliance:  g.Alliance,
		})
	}
	return tallies
}

// DistinctStrings returns the sorted distinct non-empty values of key over records.
func DistinctStrings(records []Record, key func(Record) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		v := key(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DistinctYears returns the sorted distinct non-zero years over records.
func DistinctYears(records []Record) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, r := range records {
		if r.Year == 0 {
			continue
		}
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		out = append(out, r.Year)
	}
	sort.Ints(out)
	return out
}
