package component

// ThrusterStatus is the discrete engine state chosen by input
type ThrusterStatus uint8

const (
	ThrusterIdle ThrusterStatus = iota
	ThrusterForward
	ThrusterReverse
)

// Sign returns the acceleration multiplier along the facing
func (s ThrusterStatus) Sign() float64 {
	switch s {
	case ThrusterForward:
		return 1
	case ThrusterReverse:
		return -1
	default:
		return 0
	}
}

// ThrusterComponent converts thruster status into acceleration along the facing
type ThrusterComponent struct {
	Status   ThrusterStatus
	Thrust   float64 // Units per second squared
	TurnRate float64 // Radians per second at full turn input
}
