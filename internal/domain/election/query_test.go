package election

import "testing"

func TestQueryExpression(t *testing.T) {
	q := Query{Year: 2019, StateName: "Bihar", PCName: "Patna Sahib", WinnersOnly: true}
	conds := q.Expression().Must()
	if len(conds) != 4 {
		t.Fatalf("conditions = %d, want 4", len(conds))
	}

	if conds[0].Key() != FieldYear {
		t.Errorf("first key = %s", conds[0].Key())
	}
	if v, ok := conds[0].Range().Point(); !ok || v != 2019 {
		t.Errorf("year point = %v, %v", v, ok)
	}
	if conds[1].Key() != FieldPC || conds[1].Match() != "Patna Sahib" {
		t.Errorf("pc = %s=%s", conds[1].Key(), conds[1].Match())
	}
	if conds[2].Key() != FieldState || conds[2].Match() != "Bihar" {
		t.Errorf("state = %s=%s", conds[2].Key(), conds[2].Match())
	}
	if v, _ := conds[3].Range().Point(); conds[3].Key() != FieldWinner || v != 1 {
		t.Errorf("winner = %s %v", conds[3].Key(), v)
	}
}

func TestQueryExpression_Empty(t *testing.T) {
	var q Query
	if !q.IsEmpty() {
		t.Error("zero query must be empty")
	}
	if !q.Expression().IsEmpty() {
		t.Error("zero query must have no conditions")
	}
	if q.Winners().IsEmpty() {
		t.Error("winners query must not be empty")
	}
}
