package election

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecord_UnmarshalKnownKeys(t *testing.T) {
	raw := `{"year":"2019","STATE NAME":"Kerala","PC NAME":"Wayanad","PARTY NAME":"INC",
		"Alliance":"UPA","is_winner":1,"logo_url":"https://x/inc.png","CANDIDATE":"R. Gandhi","__seq":7}`

	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Year != 2019 || r.StateName != "Kerala" || r.PCName != "Wayanad" {
		t.Errorf("got %+v", r)
	}
	if r.PartyName != "INC" || r.Alliance != "UPA" || !r.IsWinner || r.LogoURL != "https://x/inc.png" {
		t.Errorf("got %+v", r)
	}
	if r.Extra["CANDIDATE"] != "R. Gandhi" {
		t.Errorf("Extra = %v", r.Extra)
	}
	if _, ok := r.Extra["__seq"]; ok {
		t.Error("internal key must be dropped")
	}
}

func TestRecord_MarshalUsesDocumentKeys(t *testing.T) {
	r := Record{
		Year: 2014, StateName: "Goa", PCName: "North Goa", PartyName: "BJP",
		Alliance: "NDA", IsWinner: true, Extra: map[string]any{"VOTES": 100},
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"year":2014`, `"STATE NAME":"Goa"`, `"is_winner":1`, `"VOTES":100`} {
		if !strings.Contains(s, want) {
			t.Errorf("%s missing %s", s, want)
		}
	}
	if strings.Contains(s, KeyLogoURL) {
		t.Errorf("empty logo_url must be omitted: %s", s)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Year != r.Year || back.PCName != r.PCName || !back.IsWinner {
		t.Errorf("round trip = %+v", back)
	}
}

func TestRecord_DocumentOmitsUnsetFields(t *testing.T) {
	r, err := RecordFromMap(map[string]any{
		KeyStateName: "Goa", KeyPCName: "South Goa", KeyPartyName: "INC", KeyIsWinner: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := r.Document()
	for _, key := range []string{KeyYear, KeyAlliance, KeyLogoURL} {
		if _, ok := doc[key]; ok {
			t.Errorf("absent key %q emitted as %v", key, doc[key])
		}
	}
	if doc[KeyStateName] != "Goa" || doc[KeyIsWinner] != 0 {
		t.Errorf("doc = %v", doc)
	}
}

func TestRecordFromMap_WinnerForms(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"bool", true, true},
		{"int32", int32(1), true},
		{"float zero", float64(0), false},
		{"string one", "1", true},
		{"string zero", "0", false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := RecordFromMap(map[string]any{KeyIsWinner: tt.in})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.IsWinner != tt.want {
				t.Errorf("IsWinner = %v, want %v", r.IsWinner, tt.want)
			}
		})
	}
}

func TestRecordFromMap_InvalidYear(t *testing.T) {
	if _, err := RecordFromMap(map[string]any{KeyYear: "twenty"}); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
	if _, err := RecordFromMap(map[string]any{KeyYear: 2019.5}); err == nil {
		t.Fatal("expected error for fractional year")
	}
}

func TestRecordFromMap_DropsMongoID(t *testing.T) {
	r, err := RecordFromMap(map[string]any{"_id": "abc", KeyPartyName: "AAP"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Extra != nil {
		t.Errorf("Extra = %v", r.Extra)
	}
}
