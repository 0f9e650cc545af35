package catalog

import "strings"

// Dimensions is the fixed, ordered list of the twelve bipolar axes the
// assessment scores. The order is the output order of dimension results;
// scoring itself does not depend on it.
var Dimensions = []string{
	"Self-Regulation vs. Impulsivity",
	"Time Management vs. Time Urgency",
	"Task Management vs. Task Reactivity",
	"Metacognitive Monitoring vs. Blind Execution",
	"Concentration vs. Distractibility",
	"Digital Literacy vs. Digital Overload",
	"Collaboration vs. Independence",
	"Adaptability vs. Rigidity",
	"Structured Note-Taking vs. Unstructured Capture",
	"Retention vs. Cramming",
	"Critical Thinking vs. Surface Learning",
	"Well-being Management vs. Burnout Vulnerability",
}

// NumDimensions is the length of Dimensions.
const NumDimensions = 12

// Poles splits a dimension name into its positive and negative pole.
// A high score means the positive pole.
func Poles(dimension string) (positive, negative string) {
	i := strings.Index(dimension, " vs. ")
	if i < 0 {
		return dimension, ""
	}
	return dimension[:i], dimension[i+len(" vs. "):]
}
