package core

// Intent is the per-frame control input sampled by the front-end
// Opposing flags cancel each other
type Intent struct {
	TurnLeft      bool
	TurnRight     bool
	ThrustForward bool
	ThrustReverse bool
}

// Turn returns +1 for left, -1 for right, 0 when neither or both are held
func (i Intent) Turn() float64 {
	var v float64
	if i.TurnLeft {
		v += 1
	}
	if i.TurnRight {
		v -= 1
	}
	return v
}
