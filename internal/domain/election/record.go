// Package election models Lok Sabha electoral records and the seat tallies derived from them.
package election

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Document keys as stored in the source collection.
const (
	KeyYear      = "year"
	KeyStateName = "STATE NAME"
	KeyPCName    = "PC NAME"
	KeyPartyName = "PARTY NAME"
	KeyAlliance  = "Alliance"
	KeyIsWinner  = "is_winner"
	KeyLogoURL   = "logo_url"
)

// InternalKeyPrefix marks storage-only document keys that are never emitted.
const InternalKeyPrefix = "__"

// Record is one candidate in one constituency in one election year.
type Record struct {
	Year      int
	StateName string
	PCName    string
	PartyName string
	Alliance  string
	IsWinner  bool
	LogoURL   string
	// Extra holds any other document keys, emitted unchanged.
	Extra map[string]any
}

// Document returns the storage form of the record using the collection's keys.
// Unset fields are left out so a stored document reads back as written;
// is_winner is always present.
func (r Record) Document() map[string]any {
	doc := make(map[string]any, 7+len(r.Extra))
	for k, v := range r.Extra {
		doc[k] = v
	}
	if r.Year != 0 {
		doc[KeyYear] = r.Year
	}
	putString(doc, KeyStateName, r.StateName)
	putString(doc, KeyPCName, r.PCName)
	putString(doc, KeyPartyName, r.PartyName)
	putString(doc, KeyAlliance, r.Alliance)
	putString(doc, KeyLogoURL, r.LogoURL)
	winner := 0
	if r.IsWinner {
		winner = 1
	}
	doc[KeyIsWinner] = winner
	return doc
}

func putString(doc map[string]any, key, v string) {
	if v != "" {
		doc[key] = v
	}
}

// MarshalJSON encodes the record with its document keys.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// UnmarshalJSON decodes a stored document.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	rec, err := RecordFromMap(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// RecordFromMap builds a Record from a decoded document.
// Keys prefixed with "__" and the Mongo "_id" are dropped.
func RecordFromMap(m map[string]any) (Record, error) {
	var r Record
	for k, v := range m {
		switch k {
		case KeyYear:
			y, err := parseYear(v)
			if err != nil {
				return Record{}, err
			}
			r.Year = y
		case KeyStateName:
			r.StateName = stringValue(v)
		case KeyPCName:
			r.PCName = stringValue(v)
		case KeyPartyName:
			r.PartyName = stringValue(v)
		case KeyAlliance:
			r.Alliance = stringValue(v)
		case KeyIsWinner:
			w, err := parseWinner(v)
			if err != nil {
				return Record{}, err
			}
			r.IsWinner = w
		case KeyLogoURL:
			r.LogoURL = stringValue(v)
		case "_id":
		default:
			if strings.HasPrefix(k, InternalKeyPrefix) {
				continue
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[k] = v
		}
	}
	return r, nil
}

// ParseYear converts a loosely typed year (number or numeric string) to an int.
// Nil and empty strings yield 0.
func ParseYear(v any) (int, error) { return parseYear(v) }

func parseYear(v any) (int, error) {
	switch y := v.(type) {
	case nil:
		return 0, nil
	case int:
		return y, nil
	case int32:
		return int(y), nil
	case int64:
		return int(y), nil
	case float64:
		if y != math.Trunc(y) {
			return 0, fmt.Errorf("year %v is not an integer", y)
		}
		return int(y), nil
	case json.Number:
		return parseYear(string(y))
	case string:
		s := strings.TrimSpace(y)
		if s == "" {
			return 0, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid year %q", y)
		}
		return parseYear(f)
	default:
		return 0, fmt.Errorf("unsupported year type %T", v)
	}
}

func parseWinner(v any) (bool, error) {
	switch w := v.(type) {
	case nil:
		return false, nil
	case bool:
		return w, nil
	case int:
		return w != 0, nil
	case int32:
		return w != 0, nil
	case int64:
		return w != 0, nil
	case float64:
		return w != 0, nil
	case json.Number:
		f, err := w.Float64()
		if err != nil {
			return false, fmt.Errorf("invalid is_winner %q", w)
		}
		return f != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(w)) {
		case "1", "true", "yes":
			return true, nil
		case "0", "false", "no", "":
			return false, nil
		}
		return false, fmt.Errorf("invalid is_winner %q", w)
	default:
		return false, fmt.Errorf("unsupported is_winner type %T", v)
	}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
