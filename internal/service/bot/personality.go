package bot

import "fmt"

// Personality selects the stage-four tie-break heuristic. It is pure
// configuration: the engine carries no per-personality state.
type Personality int

const (
	Easy Personality = iota
	SmartRandom
	OffensiveMixed
	DefensiveMixed
	EnhancedSmart
)

var personalityNames = map[Personality]string{
	Easy:           "easy",
	SmartRandom:    "smart-random",
	OffensiveMixed: "offensive-mixed",
	DefensiveMixed: "defensive-mixed",
	EnhancedSmart:  "enhanced-smart",
}

func (p Personality) String() string {
	if name, ok := personalityNames[p]; ok {
		return name
	}
	return "unknown"
}

func ParsePersonality(name string) (Personality, error) {
	for p, n := range personalityNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown personality %q", name)
}

// AllPersonalities returns every personality in a fixed order.
func AllPersonalities() []Personality {
	return []Personality{Easy, SmartRandom, OffensiveMixed, DefensiveMixed, EnhancedSmart}
}
