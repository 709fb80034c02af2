package game

// Outcome is the result of firing at a coordinate.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "Miss"
	case OutcomeHit:
		return "Hit"
	case OutcomeSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}
