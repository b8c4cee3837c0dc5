package score

// Tier classifies a health score into a governance rating.
type Tier struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Class string `json:"tierClass"`
}

// TierFor maps a score to its tier. Thresholds are inclusive lower bounds,
// evaluated highest first.
func TierFor(healthScore int) Tier {
	switch {
	case healthScore >= 90:
		return Tier{Name: "Exemplary Republic", Icon: "🏆", Class: "tier-exemplary"}
	case healthScore >= 70:
		return Tier{Name: "Stable Democracy", Icon: "✅", Class: "tier-stable"}
	case healthScore >= 50:
		return Tier{Name: "Under Pressure", Icon: "⚠️", Class: "tier-pressure"}
	default:
		return Tier{Name: "State of Emergency", Icon: "🚨", Class: "tier-emergency"}
	}
}
