package core

// RuntimeConfig describes how a host runs a session: the terminal it draws
// into, how often it ticks and the seed of the session RNG.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the host pick one from the clock
}

// DefaultConfig is an 80×24 terminal ticking at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Interval returns the time between two ticks in seconds.
func (c RuntimeConfig) Interval() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}
