package catalog

import "fmt"

// Catalog resolves question ids against the static questionnaire. It is
// read-only after construction and safe for concurrent use.
type Catalog struct {
	questions []Question
	byID      map[int]Question
}

// New builds a Catalog from a question list and validates it: unique positive
// ids, valid dimension indexes, and at least one question per dimension.
func New(questions []Question) (*Catalog, error) {
	byID := make(map[int]Question, len(questions))
	covered := make([]bool, NumDimensions)
	for _, q := range questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question id %d: must be positive", q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("question id %d: duplicate", q.ID)
		}
		if q.Dimension < 0 || q.Dimension >= NumDimensions {
			return nil, fmt.Errorf("question id %d: dimension %d out of range", q.ID, q.Dimension)
		}
		if q.Kind != KindRating && q.Kind != KindScenario {
			return nil, fmt.Errorf("question id %d: unknown kind %q", q.ID, q.Kind)
		}
		if q.Inverted && q.Kind != KindRating {
			return nil, fmt.Errorf("question id %d: inverted applies to rating questions only", q.ID)
		}
		byID[q.ID] = q
		covered[q.Dimension] = true
	}
	for i, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("dimension %q has no questions", Dimensions[i])
		}
	}
	return &Catalog{questions: questions, byID: byID}, nil
}

// Default returns the catalog over the reference questionnaire. The static
// tables are validated at package init.
func Default() *Catalog { return defaultCatalog }

var defaultCatalog = func() *Catalog {
	c, err := New(Questions)
	if err != nil {
		panic("catalog: invalid built-in questionnaire: " + err.Error())
	}
	return c
}()

// Lookup returns the question for an id.
func (c *Catalog) Lookup(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Questions returns the questionnaire in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) Questions() []Question { return c.questions }

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }
