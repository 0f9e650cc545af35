package scoring

import (
	"math"
	"sort"

	"github.com/studyarc/studyarc/internal/catalog"
)

// scenarioScores maps scenario option ranks to points on the 7-point scale:
// best, good, neutral, poor, worst.
var scenarioScores = map[string]int{
	"A": 7,
	"B": 5,
	"C": 4,
	"D": 2,
	"E": 1,
}

// scenarioNeutral is scored for labels outside A–E. Unknown labels are
// accepted so newer clients with extra options keep working against older
// servers.
const scenarioNeutral = 4

// Fallback archetypes when the ranking is unavailable.
const (
	defaultPrimary   = "organizer"
	defaultSecondary = "deepDiver"
)

// Engine turns an answer set into dimension scores and an archetype ranking.
// It holds only immutable tables and is safe for concurrent use; ComputeResult
// is a pure function of its argument.
type Engine struct {
	catalog *catalog.Catalog
	weights catalog.WeightTable
	total   float64 // shared match normalizer, precomputed
}

// NewEngine builds an engine over a validated catalog and weight table.
func NewEngine(c *catalog.Catalog, w catalog.WeightTable) *Engine {
	return &Engine{catalog: c, weights: w, total: w.TotalPossibleScore()}
}

// Default returns an engine over the built-in questionnaire and weights.
func Default() *Engine {
	return NewEngine(catalog.Default(), catalog.Weights)
}

// Catalog exposes the engine's question catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// ComputeResult scores an answer set. It is total: any answer set, including
// an empty one, produces a result. Answers whose question id is not in the
// catalog are skipped and reported in Ignored; ratings outside [1,7] are
// clamped to the nearest bound (the reference leaves them unchecked; clamping
// is the documented deviation here).
func (e *Engine) ComputeResult(answers AnswerSet) AssessmentResult {
	sums := make([]int, catalog.NumDimensions)
	counts := make([]int, catalog.NumDimensions)
	var ignored []int

	for id, ans := range answers {
		q, ok := e.catalog.Lookup(id)
		if !ok {
			ignored = append(ignored, id)
			continue
		}
		var pts int
		switch ans.Kind {
		case AnswerScenario:
			pts = scenarioPoints(ans.Choice)
		default:
			pts = normalizeRating(ans.Rating, q.Inverted)
		}
		sums[q.Dimension] += pts
		counts[q.Dimension]++
	}
	sort.Ints(ignored)

	dims := make([]DimensionResult, catalog.NumDimensions)
	for i, name := range catalog.Dimensions {
		score := 50 // midpoint when no answer touched the dimension
		if counts[i] > 0 {
			avg := float64(sums[i]) / float64(counts[i])
			score = int(math.Round((avg - 1) / 6 * 100))
		}
		dims[i] = DimensionResult{Dimension: name, Score: score}
	}

	raw := make(map[string]float64, len(catalog.ArchetypeIDs))
	for _, d := range dims {
		frac := float64(d.Score) / 100
		for archetypeID, weight := range e.weights[d.Dimension] {
			raw[archetypeID] += frac * float64(weight)
		}
	}

	scores := make([]ArchetypeScore, 0, len(catalog.ArchetypeIDs))
	for _, id := range catalog.ArchetypeIDs {
		scores = append(scores, ArchetypeScore{
			ID:       id,
			RawScore: raw[id],
			Match:    int(math.Round(raw[id] / e.total * 100)),
		})
	}
	// Stable: exact ties keep catalog declaration order.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].RawScore > scores[j].RawScore
	})

	primary, secondary := defaultPrimary, defaultSecondary
	if len(scores) > 0 {
		primary = scores[0].ID
	}
	if len(scores) > 1 {
		secondary = scores[1].ID
	}

	return AssessmentResult{
		Dimensions:         dims,
		PrimaryArchetype:   primary,
		SecondaryArchetype: secondary,
		ArchetypeScores:    scores,
		Ignored:            ignored,
	}
}

// normalizeRating clamps a raw Likert value to [1,7] and flips it for
// inverted items so higher always means the positive pole.
func normalizeRating(v int, inverted bool) int {
	if v < 1 {
		v = 1
	} else if v > 7 {
		v = 7
	}
	if inverted {
		return 8 - v
	}
	return v
}

func scenarioPoints(label string) int {
	if pts, ok := scenarioScores[label]; ok {
		return pts
	}
	return scenarioNeutral
}
