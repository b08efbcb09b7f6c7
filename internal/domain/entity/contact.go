package entity

// Contact is what a body touched during one physics step. Any field may be nil.
type Contact struct {
	Floor   *Flat
	Ceiling *Flat
	Wall    *Wall
}

// Empty reports whether nothing was touched
func (c Contact) Empty() bool {
	return c.Floor == nil && c.Ceiling == nil && c.Wall == nil
}

// SurfaceKind is the kind of surface a body is attached to
type SurfaceKind int

const (
	Airborne SurfaceKind = iota
	Grounded
	OnWall
	OnCeiling
)

// String returns the string representation of the surface kind
func (k SurfaceKind) String() string {
	switch k {
	case Airborne:
		return "Airborne"
	case Grounded:
		return "Grounded"
	case OnWall:
		return "OnWall"
	case OnCeiling:
		return "OnCeiling"
	default:
		return "Unknown"
	}
}

// Surface is the attachment state of a body.
// Side is the Direction of the wall for OnWall and zero otherwise.
type Surface struct {
	Kind SurfaceKind
	Side float64
}

// Transition returns the surface state implied by a step's contact.
// Floor beats ceiling, ceiling beats wall.
func (s Surface) Transition(c Contact) Surface {
	switch {
	case c.Floor != nil:
		return Surface{Kind: Grounded}
	case c.Ceiling != nil:
		return Surface{Kind: OnCeiling}
	case c.Wall != nil:
		return Surface{Kind: OnWall, Side: c.Wall.Direction}
	default:
		return Surface{Kind: Airborne}
	}
}

// Is reports whether the surface is of the given kind
func (s Surface) Is(k SurfaceKind) bool {
	return s.Kind == k
}
