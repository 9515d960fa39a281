package constants

import "strings"

// Strategy selects which extractor family a factory builds.
type Strategy string

const (
	StrategyRules Strategy = "RULES" // ordered regex patterns
	StrategyModel Strategy = "MODEL" // question-answering model
)

// ParseStrategy resolves a string alias to a Strategy, case-insensitively.
func ParseStrategy(input string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "rules", "regex", "pattern":
		return StrategyRules, true
	case "model", "ml", "qa":
		return StrategyModel, true
	default:
		return "", false
	}
}
