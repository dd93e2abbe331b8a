package core

// RuntimeConfig contains configuration passed to the simulation at start-up.
// Hosts fill it from the loaded config and command-line flags.
type RuntimeConfig struct {
	ArenaW   int   // Arena width in arena units (pixels on a 1:1 surface)
	ArenaH   int   // Arena height in arena units
	TickRate int   // Frames per second requested from the host clock
	Seed     int64 // RNG seed for reproducible launches
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ArenaW:   600,
		ArenaH:   400,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
