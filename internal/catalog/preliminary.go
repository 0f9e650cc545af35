package catalog

// IntakeQuestion is an academic-background question asked once during profile
// setup. Intake answers are stored on the profile and never scored.
type IntakeQuestion struct {
	ID       int      `json:"id"`
	Prompt   string   `json:"prompt"`
	Category string   `json:"category"`
	Multi    bool     `json:"multi,omitempty"` // allows multiple selections
	Options  []Option `json:"options"`
}

var IntakeQuestions = []IntakeQuestion{
	{
		ID:       1,
		Prompt:   "Which faculty are you currently enrolled in?",
		Category: "academic-background",
		Options: []Option{
			{Label: "Arts & Humanities", Value: "arts-humanities"},
			{Label: "Engineering", Value: "engineering"},
			{Label: "Business/Management", Value: "business"},
			{Label: "Sciences", Value: "sciences"},
			{Label: "Social Sciences", Value: "social-sciences"},
			{Label: "Education", Value: "education"},
			{Label: "Law", Value: "law"},
			{Label: "Other", Value: "other"},
		},
	},
	{
		ID:       2,
		Prompt:   "What is your current year or level of study?",
		Category: "academic-background",
		Options: []Option{
			{Label: "Year 1 (Freshman)", Value: "year-1"},
			{Label: "Year 2 (Sophomore)", Value: "year-2"},
			{Label: "Year 3 (Junior)", Value: "year-3"},
			{Label: "Year 4+ (Senior/Final year)", Value: "year-4"},
			{Label: "Postgraduate/Master's/PhD", Value: "postgraduate"},
		},
	},
	{
		ID:       3,
		Prompt:   "Approximately how many credit hours or courses are you taking this semester?",
		Category: "academic-background",
		Options: []Option{
			{Label: "1-2 courses", Value: "1-2"},
			{Label: "3-4 courses", Value: "3-4"},
			{Label: "5-6 courses", Value: "5-6"},
			{Label: "7+ courses", Value: "7+"},
		},
	},
	{
		ID:       4,
		Prompt:   "What are your main academic goals? (Select all that apply)",
		Category: "goals",
		Multi:    true,
		Options: []Option{
			{Label: "Improve grades", Value: "grades"},
			{Label: "Better time management", Value: "time-management"},
			{Label: "Develop better study habits", Value: "habits"},
			{Label: "Reduce stress and anxiety", Value: "stress-reduction"},
			{Label: "Improve focus and concentration", Value: "focus"},
		},
	},
}
