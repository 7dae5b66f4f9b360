package selection

import (
	"cmp"
	"encoding/json"
	"testing"
)

func ptr(v int) *int { return &v }

func TestFromBounds(t *testing.T) {
	tests := []struct {
		name     string
		start    *int
		end      *int
		wantKind Kind
		wantLo   int
		wantHi   int
	}{
		{"neither", nil, nil, KindNone, 0, 0},
		{"start only", ptr(3), nil, KindSingle, 3, 3},
		{"end only", nil, ptr(7), KindSingle, 7, 7},
		{"equal", ptr(5), ptr(5), KindSingle, 5, 5},
		{"ordered", ptr(2), ptr(9), KindRange, 2, 9},
		{"inverted", ptr(9), ptr(2), KindRange, 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Ordered(tt.start, tt.end)
			if s.Kind() != tt.wantKind {
				t.Fatalf("Kind() = %s, want %s", s.Kind(), tt.wantKind)
			}
			if s.Lo() != tt.wantLo || s.Hi() != tt.wantHi {
				t.Errorf("bounds = [%d, %d], want [%d, %d]", s.Lo(), s.Hi(), tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestBetweenIsSymmetric(t *testing.T) {
	a := Between(10, 4, cmp.Compare[int])
	b := Between(4, 10, cmp.Compare[int])
	if a.Kind() != b.Kind() || a.Lo() != b.Lo() || a.Hi() != b.Hi() {
		t.Errorf("Between(10, 4) = [%d, %d], Between(4, 10) = [%d, %d]", a.Lo(), a.Hi(), b.Lo(), b.Hi())
	}
}

func TestPoint(t *testing.T) {
	single := Single(5, cmp.Compare[int])
	rng := Between(3, 8, cmp.Compare[int])

	tests := []struct {
		name string
		sel  Selection[int]
		p    int
		want Intersection
	}{
		{"empty", Empty[int](), 5, None},
		{"single hit", single, 5, All},
		{"single miss", single, 6, None},
		{"range start", rng, 3, Start},
		{"range end", rng, 8, End},
		{"range inside", rng, 4, Inside},
		{"range inside upper", rng, 7, Inside},
		{"range before", rng, 2, None},
		{"range after", rng, 9, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Point(tt.p); got != tt.want {
				t.Errorf("Point(%d) = %s, want %s", tt.p, got, tt.want)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	single := Single(5, cmp.Compare[int])
	rng := Between(10, 20, cmp.Compare[int])

	tests := []struct {
		name   string
		sel    Selection[int]
		lo, hi int
		want   Intersection
	}{
		{"empty", Empty[int](), 1, 7, None},
		{"single within", single, 1, 7, All},
		{"single on edge", single, 5, 11, All},
		{"single outside", single, 6, 12, None},
		{"exact match", rng, 10, 20, All},
		{"range inside interval", rng, 8, 22, All},
		{"start in interval", rng, 8, 14, Start},
		{"start on interval end", rng, 4, 10, Start},
		{"end in interval", rng, 18, 24, End},
		{"end on interval start", rng, 20, 26, End},
		{"interval inside range", rng, 12, 18, Inside},
		{"before range", rng, 1, 7, None},
		{"after range", rng, 21, 27, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Interval(tt.lo, tt.hi); got != tt.want {
				t.Errorf("Interval(%d, %d) = %s, want %s", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestMap(t *testing.T) {
	s := Between(2, 3, cmp.Compare[int])
	neg := Map(s, func(v int) int { return -v }, cmp.Compare[int])
	if neg.Lo() != -3 || neg.Hi() != -2 {
		t.Errorf("Map() = [%d, %d], want [-3, -2]", neg.Lo(), neg.Hi())
	}
	if !Map(Empty[int](), func(v int) string { return "" }, cmp.Compare[string]).IsEmpty() {
		t.Error("Map() of empty selection should stay empty")
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Between(7, 1, cmp.Compare[int]))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"kind":"range","start":1,"end":7}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	data, err = json.Marshal(Empty[int]())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"kind":"none"}` {
		t.Errorf("Unexpected JSON: %s", data)
	}
}

func TestIntersectionString(t *testing.T) {
	if All.String() != "all" || Intersection(42).String() != "unknown" {
		t.Errorf("Unexpected names: %s, %s", All, Intersection(42))
	}
}
