package catalog

// QuestionKind distinguishes the two item formats in the questionnaire.
type QuestionKind string

const (
	// KindRating is a 7-point bipolar Likert item.
	KindRating QuestionKind = "rating"
	// KindScenario is a forced-choice item with five ranked options A–E.
	KindScenario QuestionKind = "scenario"
)

// Option is one choice of a scenario question. Value is the rank label A–E.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is one immutable catalog entry. Dimension indexes into Dimensions.
// Inverted applies to rating questions only: a high raw rating then means the
// dimension's negative pole, and scoring flips it.
type Question struct {
	ID        int          `json:"id"`
	Prompt    string       `json:"prompt"`
	Kind      QuestionKind `json:"kind"`
	Category  string       `json:"category"`
	Dimension int          `json:"dimension"`
	Inverted  bool         `json:"inverted,omitempty"`
	Options   []Option     `json:"options,omitempty"`
}

// Questions is the full assessment questionnaire, two or three items per
// dimension, ids stable across versions.
var Questions = []Question{
	// Self-Regulation vs. Impulsivity
	{
		ID:        1,
		Prompt:    "I set specific goals for each study session and stick to them.",
		Kind:      KindRating,
		Category:  "self-regulation",
		Dimension: 0,
	},
	{
		ID:        2,
		Prompt:    "I often switch tasks without finishing what I started (e.g., I begin an assignment, then check social media mid-way).",
		Kind:      KindRating,
		Category:  "self-regulation",
		Dimension: 0,
		Inverted:  true,
	},
	{
		ID:        3,
		Prompt:    "If you're in the middle of studying and a friend invites you to a party, you would…",
		Kind:      KindScenario,
		Category:  "self-regulation",
		Dimension: 0,
		Options: []Option{
			{Label: "Politely decline and keep studying until you hit your goal.", Value: "A"},
			{Label: "Tell them you'll join later, then finish your study block first.", Value: "B"},
			{Label: "Study for a bit longer, then go for a short while.", Value: "C"},
			{Label: "Pause studying and go to the party, planning to resume afterward.", Value: "D"},
			{Label: "Drop your study plans and head straight to the party.", Value: "E"},
		},
	},

	// Time Management vs. Time Urgency
	{
		ID:        4,
		Prompt:    "You have a big project due in two weeks. You would…",
		Kind:      KindScenario,
		Category:  "time-management",
		Dimension: 1,
		Options: []Option{
			{Label: "Break it into clear tasks with deadlines and follow that schedule.", Value: "A"},
			{Label: "Write down the tasks now, but tweak the plan as you go.", Value: "B"},
			{Label: "Start most parts early but leave some pieces for the last few days.", Value: "C"},
			{Label: "Delay most of it until the final 2–3 days before it's due.", Value: "D"},
			{Label: "Put it all off and cram it into one long session right before the deadline.", Value: "E"},
		},
	},
	{
		ID:        5,
		Prompt:    "I often feel like I don't have enough time to complete all my study tasks.",
		Kind:      KindRating,
		Category:  "time-management",
		Dimension: 1,
		Inverted:  true,
	},
	{
		ID:        6,
		Prompt:    "I schedule specific hours each week for studying and try to stick to that schedule.",
		Kind:      KindRating,
		Category:  "time-management",
		Dimension: 1,
	},

	// Task Management vs. Task Reactivity
	{
		ID:        7,
		Prompt:    "I keep a clear, prioritized list of study tasks and follow it during my study sessions.",
		Kind:      KindRating,
		Category:  "task-management",
		Dimension: 2,
	},
	{
		ID:        8,
		Prompt:    `A new, "urgent" study task comes up while you're working on something else. You would…`,
		Kind:      KindScenario,
		Category:  "task-management",
		Dimension: 2,
		Options: []Option{
			{Label: "Finish your current task before even looking at the new one.", Value: "A"},
			{Label: "Jot down the new task, then complete your current one first.", Value: "B"},
			{Label: "Switch immediately to the new task, planning to return later.", Value: "C"},
			{Label: "Drop your original task and focus fully on the new request.", Value: "D"},
			{Label: "Abandon both tasks and do something completely different.", Value: "E"},
		},
	},

	// Metacognitive Monitoring vs. Blind Execution
	{
		ID:        9,
		Prompt:    "I regularly stop during studying to check if I really understand the material before moving on.",
		Kind:      KindRating,
		Category:  "metacognition",
		Dimension: 3,
	},
	{
		ID:        10,
		Prompt:    "I often only realize I didn't fully understand something after I've already completed the task.",
		Kind:      KindRating,
		Category:  "metacognition",
		Dimension: 3,
		Inverted:  true,
	},

	// Concentration vs. Distractibility
	{
		ID:        11,
		Prompt:    "I can usually focus on studying even if I'm in a noisy or distracting environment.",
		Kind:      KindRating,
		Category:  "concentration",
		Dimension: 4,
	},
	{
		ID:        12,
		Prompt:    "Minor interruptions (like a phone notification or noise) often derail my focus when I'm studying.",
		Kind:      KindRating,
		Category:  "concentration",
		Dimension: 4,
		Inverted:  true,
	},

	// Digital Literacy vs. Digital Overload
	{
		ID:        13,
		Prompt:    "I enjoy trying new educational apps or tools and usually learn how to use them quickly.",
		Kind:      KindRating,
		Category:  "digital-literacy",
		Dimension: 5,
	},
	{
		ID:        14,
		Prompt:    "My phone or computer notifications frequently interrupt my studying.",
		Kind:      KindRating,
		Category:  "digital-literacy",
		Dimension: 5,
		Inverted:  true,
	},

	// Collaboration vs. Independence
	{
		ID:        15,
		Prompt:    "I enjoy collaborating with classmates (studying together or working on projects) to learn or solve problems.",
		Kind:      KindRating,
		Category:  "collaboration",
		Dimension: 6,
	},
	{
		ID:        16,
		Prompt:    "I usually prefer to study or solve academic problems on my own rather than asking others for help.",
		Kind:      KindRating,
		Category:  "collaboration",
		Dimension: 6,
		Inverted:  true,
	},

	// Adaptability vs. Rigidity
	{
		ID:        17,
		Prompt:    "When my study plan changes unexpectedly, I can quickly adapt and come up with a new plan.",
		Kind:      KindRating,
		Category:  "adaptability",
		Dimension: 7,
	},
	{
		ID:        18,
		Prompt:    "Changes to my schedule or study plan often make me feel stressed or anxious.",
		Kind:      KindRating,
		Category:  "adaptability",
		Dimension: 7,
		Inverted:  true,
	},

	// Structured Note-Taking vs. Unstructured Capture
	{
		ID:        19,
		Prompt:    "I organize my notes with headings, bullet points, or diagrams to keep information clear.",
		Kind:      KindRating,
		Category:  "note-taking",
		Dimension: 8,
	},
	{
		ID:        20,
		Prompt:    "I often write notes in a hurry without organizing them, resulting in confusing scribbles.",
		Kind:      KindRating,
		Category:  "note-taking",
		Dimension: 8,
		Inverted:  true,
	},

	// Retention vs. Cramming
	{
		ID:        21,
		Prompt:    "I review my class notes and materials regularly throughout the term, not just before exams.",
		Kind:      KindRating,
		Category:  "retention",
		Dimension: 9,
	},
	{
		ID:        22,
		Prompt:    "An exam is one week away. You would…",
		Kind:      KindScenario,
		Category:  "retention",
		Dimension: 9,
		Options: []Option{
			{Label: "Review your notes weekly throughout the term and continue that habit.", Value: "A"},
			{Label: "Do some early review but still plan for a couple of cramming sessions.", Value: "B"},
			{Label: "Wait until 2–3 days before and then study intensively.", Value: "C"},
			{Label: "Begin studying the night before the exam only.", Value: "D"},
			{Label: "Skip scheduled review and try to learn everything during the exam itself.", Value: "E"},
		},
	},

	// Critical Thinking vs. Surface Learning
	{
		ID:        23,
		Prompt:    "I try to understand the underlying ideas behind what I learn, rather than just memorizing facts.",
		Kind:      KindRating,
		Category:  "critical-thinking",
		Dimension: 10,
	},
	{
		ID:        24,
		Prompt:    "I often rely on rote memorization instead of understanding the concepts deeply.",
		Kind:      KindRating,
		Category:  "critical-thinking",
		Dimension: 10,
		Inverted:  true,
	},

	// Well-being Management vs. Burnout Vulnerability
	{
		ID:        25,
		Prompt:    "I regularly take breaks and practice self-care (like exercise or relaxation) to manage stress during study periods.",
		Kind:      KindRating,
		Category:  "well-being",
		Dimension: 11,
	},
	{
		ID:        26,
		Prompt:    "I often force myself to keep studying even when I'm physically or mentally exhausted.",
		Kind:      KindRating,
		Category:  "well-being",
		Dimension: 11,
		Inverted:  true,
	},
}
