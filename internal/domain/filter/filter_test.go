package filter

import (
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

// --- Range tests ---

func TestNewRangeFilter_Valid(t *testing.T) {
	tests := []struct {
		name             string
		gt, gte, lt, lte *float64
	}{
		{"gt only", floatPtr(1), nil, nil, nil},
		{"gte only", nil, floatPtr(0), nil, nil},
		{"lt only", nil, nil, floatPtr(10), nil},
		{"lte only", nil, nil, nil, floatPtr(100)},
		{"gte+lte", nil, floatPtr(0), nil, floatPtr(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRangeFilter(tt.gt, tt.gte, tt.lt, tt.lte)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r.GT() == nil) != (tt.gt == nil) {
				t.Error("GT() mismatch")
			}
			if (r.LTE() == nil) != (tt.lte == nil) {
				t.Error("LTE() mismatch")
			}
		})
	}
}

func TestNewRangeFilter_NoBoundary(t *testing.T) {
	_, err := NewRangeFilter(nil, nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for no boundary")
	}
	if !strings.Contains(err.Error(), "at least one") {
		t.Errorf("error = %q", err)
	}
}

func TestNewRangeFilter_BothGtAndGte(t *testing.T) {
	_, err := NewRangeFilter(floatPtr(1), floatPtr(1), nil, nil)
	if err == nil {
		t.Fatal("expected error for both gt and gte")
	}
}

// --- Condition tests ---

func TestNewMatch(t *testing.T) {
	c, err := NewMatch("state", "Kerala")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsMatch() || c.IsRange() {
		t.Fatal("expected match condition")
	}
	if c.Key() != "state" || c.Match() != "Kerala" {
		t.Errorf("got %s=%s", c.Key(), c.Match())
	}
}

func TestNewMatch_EmptyValue(t *testing.T) {
	if _, err := NewMatch("state", ""); err == nil {
		t.Fatal("expected error for empty match value")
	}
	if _, err := NewMatch("", "x"); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestEqual_IsPoint(t *testing.T) {
	c := Equal("year", 2019)
	if !c.IsRange() {
		t.Fatal("expected range condition")
	}
	v, ok := c.Range().Point()
	if !ok || v != 2019 {
		t.Errorf("Point() = %v, %v", v, ok)
	}
}

func TestBetween_Closed(t *testing.T) {
	c := Between("__seq", 1001, 2000)
	r := c.Range()
	if r == nil || *r.GTE() != 1001 || *r.LTE() != 2000 || r.GT() != nil || r.LT() != nil {
		t.Fatalf("range = %+v", r)
	}
	if _, ok := r.Point(); ok {
		t.Error("wide range must not be a point")
	}
}

func TestRangePoint_OpenRange(t *testing.T) {
	r, _ := NewRangeFilter(nil, floatPtr(1), nil, nil)
	if _, ok := r.Point(); ok {
		t.Error("open range must not be a point")
	}
}

// --- Expression tests ---

func TestExpression_ZeroIsEmpty(t *testing.T) {
	var e Expression
	if !e.IsEmpty() {
		t.Error("zero expression must be empty")
	}
	if !And().IsEmpty() {
		t.Error("And() must be empty")
	}
}

func TestExpression_WithDoesNotAlias(t *testing.T) {
	base := And(Match("state", "Goa"))
	a := base.With(Equal("year", 2014))
	b := base.With(Equal("year", 2019))

	if len(base.Must()) != 1 {
		t.Fatalf("base mutated: %d conditions", len(base.Must()))
	}
	va, _ := a.Must()[1].Range().Point()
	vb, _ := b.Must()[1].Range().Point()
	if va != 2014 || vb != 2019 {
		t.Errorf("aliasing between derived expressions: %v %v", va, vb)
	}
}
