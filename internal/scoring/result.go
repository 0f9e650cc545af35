package scoring

// DimensionResult is one dimension's normalized score on the 0–100 scale.
type DimensionResult struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
}

// ArchetypeScore is one archetype's projection of the profile. Match is the
// raw score normalized against the shared constant from the weight table; it
// is a relative strength, not a probability, and matches across archetypes do
// not sum to 100.
type ArchetypeScore struct {
	ID       string  `json:"id"`
	RawScore float64 `json:"score"`
	Match    int     `json:"match"`
}

// AssessmentResult is the engine output: all twelve dimension scores in
// catalog order and the five archetypes sorted descending by raw score.
// Ignored lists answered question ids that did not resolve in the catalog,
// in ascending order.
type AssessmentResult struct {
	Dimensions         []DimensionResult `json:"dimensions"`
	PrimaryArchetype   string            `json:"primary_archetype"`
	SecondaryArchetype string            `json:"secondary_archetype"`
	ArchetypeScores    []ArchetypeScore  `json:"archetype_scores"`
	Ignored            []int             `json:"ignored,omitempty"`
}
