package domain

// Department is a life area the citizen governs. The catalog is fixed; an
// unknown id falls back to the first entry.
type Department struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Departments lists every governable life area, in display order.
var Departments = []Department{
	{ID: "health", Label: "Health & Fitness", Icon: "🏋️"},
	{ID: "finance", Label: "Finance", Icon: "💰"},
	{ID: "learning", Label: "Learning & Growth", Icon: "📚"},
	{ID: "career", Label: "Career", Icon: "💼"},
	{ID: "relationships", Label: "Relationships", Icon: "❤️"},
	{ID: "wellbeing", Label: "Wellbeing", Icon: "🧘"},
}

// DepartmentByID looks up a department, falling back to the first entry for
// unknown ids.
func DepartmentByID(id string) Department {
	for _, d := range Departments {
		if d.ID == id {
			return d
		}
	}
	return Departments[0]
}
