package entity

// Capability is a fixed set of restrictions an animation or status puts on a driver.
// The physics step never reads it.
type Capability uint8

const (
	NoControl Capability = 1 << iota
	NoTurn
	NoAttack
)

// Has reports whether every bit of c is set
func (s Capability) Has(c Capability) bool {
	return s&c == c
}

// With returns the set with c added
func (s Capability) With(c Capability) Capability {
	return s | c
}

// Without returns the set with c removed
func (s Capability) Without(c Capability) Capability {
	return s &^ c
}

// String lists the set bits
func (s Capability) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, c := range []struct {
		bit  Capability
		name string
	}{{NoControl, "noControl"}, {NoTurn, "noTurn"}, {NoAttack, "noAttack"}} {
		if s.Has(c.bit) {
			if out != "" {
				out += "|"
			}
			out += c.name
		}
	}
	return out
}
