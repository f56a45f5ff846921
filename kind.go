package fa

// Kind Classification of a state.
type Kind int

const (
	None    = Kind(iota) // Neither initial nor final
	Initial              // Initial only
	Final                // Final only
	Both                 // Initial and final
)

func (k Kind) IsInitial() bool {
	return k == Initial || k == Both
}

func (k Kind) IsFinal() bool {
	return k == Final || k == Both
}

// WithInitial Returns k with the initial flag raised.
func (k Kind) WithInitial() Kind {
	switch k {
	case None:
		return Initial
	case Final:
		return Both
	default:
		return k
	}
}

// WithFinal Returns k with the final flag raised.
func (k Kind) WithFinal() Kind {
	switch k {
	case None:
		return Final
	case Initial:
		return Both
	default:
		return k
	}
}

// Mirror Swaps the initial and final flags.
func (k Kind) Mirror() Kind {
	switch k {
	case Initial:
		return Final
	case Final:
		return Initial
	default:
		return k
	}
}

// Complement Flips the final flag and keeps the initial one.
func (k Kind) Complement() Kind {
	switch k {
	case None:
		return Final
	case Initial:
		return Both
	case Final:
		return None
	case Both:
		return Initial
	}
	return k
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Initial:
		return "initial"
	case Final:
		return "final"
	case Both:
		return "both"
	}
	return "unknown"
}
