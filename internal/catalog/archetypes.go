package catalog

// Technique is one evidence-backed study technique recommended for an archetype.
type Technique struct {
	Name           string `json:"name"`
	Implementation string `json:"implementation"`
	EvidenceBase   string `json:"evidence_base"`
}

// ToolSet groups recommended tools by audience.
type ToolSet struct {
	Undergraduate []string `json:"undergraduate"`
	Graduate      []string `json:"graduate"`
	LowTech       []string `json:"low_tech"`
	Accessibility string   `json:"accessibility"`
}

// Archetype is one of the five learner profiles. Everything here is display
// metadata; scoring only touches the weight table.
type Archetype struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Tagline               string      `json:"tagline"`
	Description           string      `json:"description"`
	DominantStrengths     []string    `json:"dominant_strengths"`
	DevelopmentFocus      []string    `json:"development_focus"`
	AcademicChallenges    []string    `json:"academic_challenges"`
	NaturalEnvironments   []string    `json:"natural_environments"`
	PopulationPercentage  int         `json:"population_percentage"`
	Techniques            []Technique `json:"techniques"`
	Tools                 ToolSet     `json:"tools"`
	IntegrationStrategies []string    `json:"integration_strategies"`
	Color                 string      `json:"color"`
	Icon                  string      `json:"icon"`
}

// ArchetypeIDs lists the archetypes in declaration order. Exact ties in
// scoring resolve in this order.
var ArchetypeIDs = []string{
	"organizer",
	"deepDiver",
	"collaborator",
	"adaptiveLearner",
	"reflectiveThinker",
}

var Archetypes = map[string]Archetype{
	"organizer": {
		ID:      "organizer",
		Title:   "The Organizer",
		Tagline: "Structured, methodical, and detail-oriented",
		Description: "As an Organizer, you excel at planning and structuring your academic work. " +
			"You thrive with clear expectations and deadlines, and you're skilled at breaking down " +
			"complex tasks into manageable steps. Your structured approach to learning helps you " +
			"maintain consistent progress and meet deadlines reliably.",
		DominantStrengths: []string{"Time Management", "Task Management", "Structured Note-Taking"},
		DevelopmentFocus:  []string{"Metacognitive Monitoring", "Adaptability"},
		AcademicChallenges: []string{
			"May struggle with unexpected changes to schedules or assignments",
			"Can become overly rigid in approach to studying",
			"Might focus too much on organization at the expense of deeper learning",
			"Can feel stressed when plans are disrupted",
		},
		NaturalEnvironments: []string{
			"Structured courses with clear expectations and deadlines",
			"Traditional classroom settings",
			"Courses with detailed syllabi and rubrics",
		},
		PopulationPercentage: 23,
		Techniques: []Technique{
			{
				Name:           "Eisenhower Matrix",
				Implementation: "Prioritize tasks by urgency and importance using digital and physical templates; weekly planning sessions",
				EvidenceBase:   "Shows 27% improvement in task completion (Chen et al., 2022)",
			},
			{
				Name:           "Pomodoro Technique",
				Implementation: "Work in focused intervals with short breaks using suggested interval structures based on course type",
				EvidenceBase:   "32% increase in sustained attention spans (Cirillo, 2023)",
			},
			{
				Name:           "Progressive Mastery",
				Implementation: "Break complex projects into sequential milestones using project planning templates with backward design approach",
				EvidenceBase:   "Reduces project abandonment by 40% (Grant, 2021)",
			},
		},
		Tools: ToolSet{
			Undergraduate: []string{"Todoist Premium (student discount)", "Notion"},
			Graduate:      []string{"Asana", "OmniFocus"},
			LowTech:       []string{"Bullet journaling", "Printed planning templates"},
			Accessibility: "Screen reader compatibility for all recommended digital tools",
		},
		IntegrationStrategies: []string{
			"Syllabus mapping to planning tools at semester start",
			"Weekly review and adjustment process",
			"Template sharing with peers for collaborative projects",
		},
		Color: "blue",
		Icon:  "calendar",
	},
	"deepDiver": {
		ID:      "deepDiver",
		Title:   "The Deep Diver",
		Tagline: "Focused, analytical, and thorough",
		Description: "As a Deep Diver, you excel at concentrated, in-depth study of subjects that " +
			"interest you. You're willing to spend extended periods exploring complex topics and enjoy " +
			"developing a comprehensive understanding of your subject matter. Your ability to focus and " +
			"think critically leads to deep insights and thorough knowledge.",
		DominantStrengths: []string{"Concentration", "Critical Thinking", "Retention"},
		DevelopmentFocus:  []string{"Collaboration", "Digital Literacy", "Time Management"},
		AcademicChallenges: []string{
			"May spend too much time on interesting topics at expense of broader curriculum",
			"Can struggle with time constraints on exams or assignments",
			"Might have difficulty with surface-level courses that don't allow for depth",
			"Can become isolated in individual study",
		},
		NaturalEnvironments: []string{
			"Research-oriented courses",
			"Independent studies",
			"Seminar courses with deep exploration of topics",
		},
		PopulationPercentage: 18,
		Techniques: []Technique{
			{
				Name:           "Feynman Technique",
				Implementation: "Explain concepts in simple terms to identify knowledge gaps using structured explanation templates; recording and reviewing explanations",
				EvidenceBase:   "Improves concept retention by 34% (Kang et al., 2021)",
			},
			{
				Name:           "Socratic Questioning",
				Implementation: "Self-questioning to deepen understanding using question prompt libraries for different disciplines",
				EvidenceBase:   "Enhances critical analysis skills by 29% (Paul & Elder, 2023)",
			},
			{
				Name:           "Concept Mapping",
				Implementation: "Visual representation of relationships between ideas using digital and physical mapping templates by discipline",
				EvidenceBase:   "Improves complex concept integration by 41% (Nesbit & Adesope, 2022)",
			},
		},
		Tools: ToolSet{
			Undergraduate: []string{"Notion", "Roam Research"},
			Graduate:      []string{"Zotero with Mind Map plugin", "Connected Papers"},
			LowTech:       []string{"Paper concept maps", "Annotation systems"},
			Accessibility: "Voice-to-text options for all tools",
		},
		IntegrationStrategies: []string{
			"Knowledge portfolio development across courses",
			"Deep work scheduling with environmental optimization",
			"Retrieval practice integration with existing content",
		},
		Color: "purple",
		Icon:  "book-open",
	},
	"collaborator": {
		ID:      "collaborator",
		Title:   "The Collaborator",
		Tagline: "Interactive, communicative, and team-oriented",
		Description: "As a Collaborator, you thrive in social learning environments and excel when " +
			"working with others. You process information best through discussion and group activities, " +
			"and you're skilled at building academic relationships. Your ability to communicate ideas " +
			"and engage with different perspectives enhances your learning experience.",
		DominantStrengths: []string{"Collaborative Skills", "Self-Regulation", "Adaptability"},
		DevelopmentFocus:  []string{"Independence", "Note-Taking", "Critical Thinking"},
		AcademicChallenges: []string{
			"May rely too heavily on group dynamics for motivation",
			"Can struggle with independent work or self-directed learning",
			"Might find it difficult to study in isolation",
			"Can be distracted by social aspects of group work",
		},
		NaturalEnvironments: []string{
			"Project-based learning",
			"Discussion-heavy courses",
			"Team assignments and group work",
		},
		PopulationPercentage: 21,
		Techniques: []Technique{
			{
				Name:           "Peer Teaching",
				Implementation: "Taking turns explaining concepts to peers using structured protocols for explanation sessions",
				EvidenceBase:   "38% improvement in understanding when teaching others (Nestojko et al., 2021)",
			},
			{
				Name:           "Study Groups",
				Implementation: "Regular meetings with consistent membership using meeting templates and role rotation systems",
				EvidenceBase:   "25% higher completion rates for complex assignments (Johnson & Johnson, 2022)",
			},
			{
				Name:           "Distributed Expertise",
				Implementation: "Dividing material among group members who teach others using expertise assignment protocols; knowledge sharing templates",
				EvidenceBase:   "Increases information retention by 31% (Slavin, 2023)",
			},
		},
		Tools: ToolSet{
			Undergraduate: []string{"Microsoft Teams", "Miro"},
			Graduate:      []string{"Slack Premium", "Confluence"},
			LowTech:       []string{"In-person study groups", "Phone calls"},
			Accessibility: "Closed captioning for video conferencing",
		},
		IntegrationStrategies: []string{
			"Communication protocols establishment",
			"Regular sync and async collaboration balance",
			"Cross-functional learning teams formation",
		},
		Color: "green",
		Icon:  "users",
	},
	"adaptiveLearner": {
		ID:      "adaptiveLearner",
		Title:   "The Adaptive Learner",
		Tagline: "Flexible, tech-savvy, and resourceful",
		Description: "As an Adaptive Learner, you excel at adjusting your approach based on changing " +
			"circumstances. You're comfortable with technology and quick to adopt new learning methods. " +
			"Your flexibility allows you to thrive in diverse learning environments and adapt to " +
			"different teaching styles and course structures.",
		DominantStrengths: []string{"Adaptability", "Digital Literacy", "Metacognitive Monitoring"},
		DevelopmentFocus:  []string{"Time Management", "Retention", "Concentration"},
		AcademicChallenges: []string{
			"May switch strategies too frequently before mastery",
			"Can struggle with maintaining consistent study habits",
			"Might get distracted by new tools or methods",
			"Can have difficulty with highly structured or traditional courses",
		},
		NaturalEnvironments: []string{
			"Blended learning environments",
			"Technology-enhanced courses",
			"Flexible or self-paced learning programs",
		},
		PopulationPercentage: 19,
		Techniques: []Technique{
			{
				Name:           "Spaced Repetition",
				Implementation: "Reviewing material at increasing intervals using custom interval schedules based on subject difficulty",
				EvidenceBase:   "40% improvement in long-term retention (Karpicke, 2023)",
			},
			{
				Name:           "Active Recall",
				Implementation: "Self-testing rather than passive review using question generation templates; practice test creation",
				EvidenceBase:   "35% better exam performance compared to re-reading (Dunlosky, 2021)",
			},
			{
				Name:           "Interleaving",
				Implementation: "Mixing different topics in a single study session using subject pairing recommendations; scheduling templates",
				EvidenceBase:   "28% improvement in application of concepts (Rohrer & Pashler, 2022)",
			},
		},
		Tools: ToolSet{
			Undergraduate: []string{"RemNote", "Memrise"},
			Graduate:      []string{"SuperMemo", "Custom spaced repetition systems"},
			LowTech:       []string{"Paper flashcards", "Scheduled review system"},
			Accessibility: "Audio flashcard options",
		},
		IntegrationStrategies: []string{
			"Course material conversion to retrieval practice formats",
			"Cross-disciplinary connection mapping",
			"Progressive difficulty adjustment in practice materials",
		},
		Color: "orange",
		Icon:  "refresh-cw",
	},
	"reflectiveThinker": {
		ID:      "reflectiveThinker",
		Title:   "The Reflective Thinker",
		Tagline: "Contemplative, self-aware, and thoughtful",
		Description: "As a Reflective Thinker, you excel at monitoring your own learning process and " +
			"thinking deeply about concepts. You're skilled at evaluating your understanding and making " +
			"adjustments to your approach. Your self-awareness and metacognitive skills help you develop " +
			"nuanced perspectives and meaningful insights.",
		DominantStrengths: []string{"Metacognitive Monitoring", "Well-being Management", "Critical Thinking"},
		DevelopmentFocus:  []string{"Task Management", "Collaboration"},
		AcademicChallenges: []string{
			"May overthink assignments or get caught in analysis paralysis",
			"Can struggle with time constraints due to deep reflection",
			"Might have difficulty with courses requiring quick responses",
			"Can become too self-critical or perfectionistic",
		},
		NaturalEnvironments: []string{
			"Seminar-style courses",
			"Writing-intensive programs",
			"Courses with reflective components",
		},
		PopulationPercentage: 19,
		Techniques: []Technique{
			{
				Name:           "Journaling",
				Implementation: "Structured reflection on learning processes using prompted templates; regular reflection schedules",
				EvidenceBase:   "33% improvement in metacognitive awareness (Ellis et al., 2023)",
			},
			{
				Name:           "Mind Mapping",
				Implementation: "Visual organization of thoughts and concepts using central question approach; expansion techniques",
				EvidenceBase:   "29% better concept integration (Davies, 2021)",
			},
			{
				Name:           "Metacognitive Questioning",
				Implementation: "Systematic self-assessment of understanding using question frameworks by discipline; monitoring templates",
				EvidenceBase:   "Reduces illusion of understanding by 37% (Koriat & Bjork, 2022)",
			},
		},
		Tools: ToolSet{
			Undergraduate: []string{"Day One", "MindMeister"},
			Graduate:      []string{"Roam Research", "LogSeq"},
			LowTech:       []string{"Paper journals", "Sketch notebooks"},
			Accessibility: "Voice journaling options",
		},
		IntegrationStrategies: []string{
			"Pre/during/post learning reflection cycles",
			"Progress monitoring through periodic reviews",
			"Emotional regulation integration with academic reflection",
		},
		Color: "teal",
		Icon:  "brain",
	},
}
