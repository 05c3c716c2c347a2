package tags

// DefaultFallback is returned when no rule scores above zero.
var DefaultFallback = [2]string{"Strategy", "Leadership"}

// DefaultRules is the reference rule table: ten tags, one rule each.
// Order matters for tie-breaking, so this is a slice, not a map.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "Technology", Keywords: []string{
			"tech", "software", "computer", "digital", "internet",
			"ai", "algorithm", "data", "engineering", "silicon",
		}},
		{Tag: "Finance", Keywords: []string{
			"money", "invest", "market", "stock", "wealth",
			"capital", "bank", "fund", "economy", "profit",
		}},
		{Tag: "Geopolitics", Keywords: []string{
			"war", "nation", "politic", "government", "power",
			"empire", "global", "china", "russia", "america",
		}},
		{Tag: "Leadership", Keywords: []string{
			"leader", "manage", "team", "culture", "decision",
			"vision", "executive", "ceo", "organization",
		}},
		{Tag: "Strategy", Keywords: []string{
			"strategy", "strategic", "compet", "advantage", "plan",
			"position", "long-term", "framework",
		}},
		{Tag: "Entrepreneurship", Keywords: []string{
			"startup", "founder", "entrepreneur", "venture", "build",
			"product", "customer", "business model",
		}},
		{Tag: "History", Keywords: []string{
			"history", "historical", "century", "ancient", "past",
			"era", "revolution", "civilization",
		}},
		{Tag: "Innovation", Keywords: []string{
			"innovat", "invent", "disrupt", "creative", "breakthrough",
			"research", "discovery", "experiment",
		}},
		{Tag: "Psychology", Keywords: []string{
			"psycholog", "mind", "behavior", "cognitive", "emotion",
			"bias", "habit", "motivation", "mental",
		}},
		{Tag: "Resilience", Keywords: []string{
			"resilien", "adversity", "failure", "persever", "grit",
			"struggle", "overcome", "endur", "recover",
		}},
	}
}
