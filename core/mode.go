package core

// TravelMode is the top-level simulation mode
type TravelMode uint8

const (
	ModeExploring TravelMode = iota
	ModeWarping
)

func (m TravelMode) String() string {
	switch m {
	case ModeExploring:
		return "Exploring"
	case ModeWarping:
		return "Warping"
	default:
		return "Unknown"
	}
}

// TravelPhase is the active step of a warp animation
type TravelPhase uint8

const (
	PhaseIdle TravelPhase = iota
	PhaseApproach
	PhaseFadeOut
	PhaseDwell
	PhaseFadeIn
)

func (p TravelPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseApproach:
		return "Approach"
	case PhaseFadeOut:
		return "FadeOut"
	case PhaseDwell:
		return "Dwell"
	case PhaseFadeIn:
		return "FadeIn"
	default:
		return "Unknown"
	}
}
