package entity

// Spawn is a spawn point on the disc
type Spawn struct {
	Kind      string
	Position  Position
	Direction float64
}

// Level holds the static geometry of one disc world
type Level struct {
	ID       string
	Name     string
	Floors   []*Flat
	Ceilings []*Flat
	Walls    []*Wall

	Platforms []*Platform
	Spawn     Position
	Spawns    []Spawn
}

// NewLevel creates an empty level
func NewLevel(id, name string) *Level {
	return &Level{
		ID:   id,
		Name: name,
	}
}

// AddPlatform registers a platform and its four pieces
func (l *Level) AddPlatform(p *Platform) {
	l.Platforms = append(l.Platforms, p)
	l.Floors = append(l.Floors, p.Floor)
	l.Ceilings = append(l.Ceilings, p.Ceiling)
	l.Walls = append(l.Walls, p.LeftWall, p.RightWall)
}

// Update advances every flat and wall by its own motion.
// Each piece is updated exactly once even if it is listed twice.
func (l *Level) Update(dt float64) {
	seenFlats := make(map[*Flat]struct{}, len(l.Floors)+len(l.Ceilings))
	for _, list := range [][]*Flat{l.Floors, l.Ceilings} {
		for _, f := range list {
			if _, ok := seenFlats[f]; ok {
				continue
			}
			seenFlats[f] = struct{}{}
			f.Update(dt)
		}
	}

	seenWalls := make(map[*Wall]struct{}, len(l.Walls))
	for _, w := range l.Walls {
		if _, ok := seenWalls[w]; ok {
			continue
		}
		seenWalls[w] = struct{}{}
		w.Update(dt)
	}
}

// WallsInMotion reports whether any wall moves on its own
func (l *Level) WallsInMotion() bool {
	for _, w := range l.Walls {
		if w.Motion != 0 {
			return true
		}
	}
	return false
}
