package core

// RuntimeConfig contains configuration passed to the terminal front-end.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the piece queue; 0 means unseeded
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// SeedPtr returns the seed as an optional value for the engine.
func (c RuntimeConfig) SeedPtr() *int64 {
	if c.Seed == 0 {
		return nil
	}
	seed := c.Seed
	return &seed
}

// GameOptions are the caller-supplied parameters for starting a session.
// Zero values fall back to level 1, world 1, a generated target and an
// unseeded queue.
type GameOptions struct {
	Level     int
	World     int
	Target    Shape    // explicit target gem, takes precedence over generation
	Queue     []string // explicit queue contents by shape name
	Seed      *int64
	BestScore *int
}

// WithDefaults fills zero level/world values.
func (o GameOptions) WithDefaults() GameOptions {
	if o.Level <= 0 {
		o.Level = 1
	}
	if o.World <= 0 {
		o.World = 1
	}
	return o
}

// Clone returns a copy that shares no slices or pointers with o.
func (o GameOptions) Clone() GameOptions {
	out := o
	out.Target = o.Target.Clone()
	if o.Queue != nil {
		out.Queue = append([]string(nil), o.Queue...)
	}
	if o.Seed != nil {
		seed := *o.Seed
		out.Seed = &seed
	}
	if o.BestScore != nil {
		best := *o.BestScore
		out.BestScore = &best
	}
	return out
}
