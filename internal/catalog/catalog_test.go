package catalog

import "testing"

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	if c.Len() != 26 {
		t.Fatalf("catalog has %d questions, want 26", c.Len())
	}
	perDim := make([]int, NumDimensions)
	for _, q := range c.Questions() {
		perDim[q.Dimension]++
		if q.Kind == KindScenario && len(q.Options) != 5 {
			t.Errorf("question %d: scenario with %d options, want 5", q.ID, len(q.Options))
		}
		if q.Kind == KindScenario && q.Inverted {
			t.Errorf("question %d: scenario cannot be inverted", q.ID)
		}
	}
	for i, n := range perDim {
		if n < 2 {
			t.Errorf("dimension %q has %d questions, want at least 2", Dimensions[i], n)
		}
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		qs   []Question
	}{
		{"non-positive id", []Question{{ID: 0, Kind: KindRating, Dimension: 0}}},
		{"duplicate id", []Question{
			{ID: 1, Kind: KindRating, Dimension: 0},
			{ID: 1, Kind: KindRating, Dimension: 1},
		}},
		{"dimension out of range", []Question{{ID: 1, Kind: KindRating, Dimension: NumDimensions}}},
		{"unknown kind", []Question{{ID: 1, Kind: "essay", Dimension: 0}}},
		{"inverted scenario", []Question{{ID: 1, Kind: KindScenario, Dimension: 0, Inverted: true}}},
		{"uncovered dimension", []Question{{ID: 1, Kind: KindRating, Dimension: 0}}},
	}
	for _, c := range cases {
		if _, err := New(c.qs); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestWeightTableShape(t *testing.T) {
	if len(Weights) != NumDimensions {
		t.Fatalf("weight table has %d rows, want %d", len(Weights), NumDimensions)
	}
	for _, name := range Dimensions {
		row, ok := Weights[name]
		if !ok {
			t.Errorf("no weight row for dimension %q", name)
			continue
		}
		for _, id := range ArchetypeIDs {
			w, ok := row[id]
			if !ok {
				t.Errorf("dimension %q: no weight for archetype %q", name, id)
			}
			if w < 1 || w > 5 {
				t.Errorf("dimension %q, archetype %q: weight %d out of 1..5", name, id, w)
			}
		}
	}
}

func TestArchetypeCatalogMatchesIDs(t *testing.T) {
	if len(Archetypes) != len(ArchetypeIDs) {
		t.Fatalf("archetype map has %d entries, want %d", len(Archetypes), len(ArchetypeIDs))
	}
	for _, id := range ArchetypeIDs {
		a, ok := Archetypes[id]
		if !ok {
			t.Errorf("archetype %q missing from map", id)
			continue
		}
		if a.ID != id {
			t.Errorf("archetype %q has mismatched ID field %q", id, a.ID)
		}
	}
}

func TestPoles(t *testing.T) {
	pos, neg := Poles("Retention vs. Cramming")
	if pos != "Retention" || neg != "Cramming" {
		t.Fatalf("Poles = %q / %q", pos, neg)
	}
}
