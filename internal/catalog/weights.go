package catalog

// WeightTable maps each dimension (by name) to per-archetype weights. Weights
// are small hand-authored integers; a higher weight means the dimension
// contributes more strongly to that archetype.
type WeightTable map[string]map[string]int

// Weights is the reference dimension→archetype weight matrix.
var Weights = WeightTable{
	"Self-Regulation vs. Impulsivity": {
		"organizer":         3,
		"collaborator":      4,
		"reflectiveThinker": 2,
		"adaptiveLearner":   1,
		"deepDiver":         2,
	},
	"Time Management vs. Time Urgency": {
		"organizer":         5,
		"deepDiver":         2,
		"adaptiveLearner":   1,
		"reflectiveThinker": 2,
		"collaborator":      2,
	},
	"Task Management vs. Task Reactivity": {
		"organizer":         5,
		"reflectiveThinker": 2,
		"deepDiver":         3,
		"adaptiveLearner":   1,
		"collaborator":      1,
	},
	"Metacognitive Monitoring vs. Blind Execution": {
		"reflectiveThinker": 5,
		"adaptiveLearner":   4,
		"deepDiver":         3,
		"organizer":         1,
		"collaborator":      2,
	},
	"Concentration vs. Distractibility": {
		"deepDiver":         5,
		"reflectiveThinker": 3,
		"organizer":         3,
		"adaptiveLearner":   1,
		"collaborator":      1,
	},
	"Digital Literacy vs. Digital Overload": {
		"adaptiveLearner":   5,
		"deepDiver":         2,
		"collaborator":      3,
		"organizer":         2,
		"reflectiveThinker": 1,
	},
	"Collaboration vs. Independence": {
		"collaborator":      5,
		"adaptiveLearner":   3,
		"reflectiveThinker": 1,
		"organizer":         2,
		"deepDiver":         1,
	},
	"Adaptability vs. Rigidity": {
		"adaptiveLearner":   5,
		"collaborator":      4,
		"reflectiveThinker": 2,
		"deepDiver":         1,
		"organizer":         1,
	},
	"Structured Note-Taking vs. Unstructured Capture": {
		"organizer":         5,
		"deepDiver":         3,
		"reflectiveThinker": 2,
		"adaptiveLearner":   1,
		"collaborator":      1,
	},
	"Retention vs. Cramming": {
		"deepDiver":         5,
		"organizer":         3,
		"reflectiveThinker": 3,
		"adaptiveLearner":   2,
		"collaborator":      1,
	},
	"Critical Thinking vs. Surface Learning": {
		"deepDiver":         5,
		"reflectiveThinker": 5,
		"adaptiveLearner":   2,
		"organizer":         1,
		"collaborator":      2,
	},
	"Well-being Management vs. Burnout Vulnerability": {
		"reflectiveThinker": 5,
		"collaborator":      3,
		"adaptiveLearner":   3,
		"organizer":         2,
		"deepDiver":         1,
	},
}

// TotalPossibleScore returns the normalization constant used for match
// percentages: the sum over dimensions of the single highest weight any
// archetype carries there. Note this is not an archetype's own achievable
// maximum, so match values do not sum to 100 across archetypes. The constant
// is kept as-is for compatibility with stored results.
func (w WeightTable) TotalPossibleScore() float64 {
	total := 0
	for _, row := range w {
		max := 0
		for _, weight := range row {
			if weight > max {
				max = weight
			}
		}
		total += max
	}
	return float64(total)
}
