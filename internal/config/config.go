// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade engines.
//
// Sizes and speeds of the continuous games are fractions of the playfield
// (speeds per second), so a config works for any canvas size.
package config

// EngineConfig controls the tick driver.
type EngineConfig struct {
	TickRate int     `yaml:"tick_rate"` // Driver ticks per second
	MaxDT    float64 `yaml:"max_dt"`    // Largest dt fed to a single tick, seconds
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	Bounce   BounceAngles `yaml:"bounce"`
	Gameplay PongGameplay `yaml:"gameplay"`
	CPU      PongCPU      `yaml:"cpu"`
}

// PongPaddle defines paddle geometry as fractions of the playfield.
type PongPaddle struct {
	Width  float64 `yaml:"width"`  // fraction of field width
	Height float64 `yaml:"height"` // fraction of field height
	Offset float64 `yaml:"offset"` // distance from the side wall, fraction of width
	Nudge  float64 `yaml:"nudge"`  // one discrete move, fraction of height
}

// PongBall defines the ball. Speeds are field widths per second.
type PongBall struct {
	Radius   float64 `yaml:"radius"`   // fraction of the smaller field side
	Speed    float64 `yaml:"speed"`    // serve speed
	SpeedUp  float64 `yaml:"speed_up"` // multiplier per paddle hit
	MaxSpeed float64 `yaml:"max_speed"`
}

// BounceAngles bounds the angle-shaped paddle bounce, in degrees from the
// horizontal.
type BounceAngles struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// PongCPU defines the CPU opponent. Skill scales the CPU paddle's top
// speed and rises with the player's score.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
	MaxAt    int     `yaml:"max_at"` // player score at which MaxSkill is reached
}

// BreakoutConfig contains all configuration for the brick breaker.
type BreakoutConfig struct {
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bounce   BounceAngles     `yaml:"bounce"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPaddle defines paddle geometry.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`         // fraction of field width
	Height       float64 `yaml:"height"`        // fraction of field height
	BottomMargin float64 `yaml:"bottom_margin"` // fraction of field height
	Nudge        float64 `yaml:"nudge"`         // fraction of field width
}

// BreakoutBall defines the ball. Speed is field heights per second.
type BreakoutBall struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	SpeedStep     float64 `yaml:"speed_step"`     // multiplier increment per brick hit
	MaxMultiplier float64 `yaml:"max_multiplier"` // cap of the speed multiplier
}

// BreakoutBricks defines the brick field placement.
type BreakoutBricks struct {
	Top       float64 `yaml:"top"`        // fraction of field height
	RowHeight float64 `yaml:"row_height"` // fraction of field height
	Gap       float64 `yaml:"gap"`        // fraction of field width
	RowPoints int     `yaml:"row_points"` // points per row weight step
}

// BreakoutGameplay defines lives and the starting layout.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

// InvadersConfig contains all configuration for the formation game.
type InvadersConfig struct {
	Formation InvadersFormation `yaml:"formation"`
	Fire      InvadersFire      `yaml:"fire"`
	Player    InvadersPlayer    `yaml:"player"`
	Gameplay  InvadersGameplay  `yaml:"gameplay"`
}

// InvadersFormation defines the marching grid.
type InvadersFormation struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	RowPoints    []int   `yaml:"row_points"` // top row first
	Top          float64 `yaml:"top"`        // fraction of field height
	Width        float64 `yaml:"width"`      // fraction of field width
	CellHeight   float64 `yaml:"cell_height"`
	AlienScale   float64 `yaml:"alien_scale"` // alien size relative to its cell
	Step         float64 `yaml:"step"`        // one march step, fraction of width
	SlowInterval float64 `yaml:"slow_interval"`
	FastInterval float64 `yaml:"fast_interval"`
	WaveFactor   float64 `yaml:"wave_factor"` // interval multiplier per wave
}

// InvadersFire defines density-adaptive enemy fire.
type InvadersFire struct {
	MinShots    int     `yaml:"min_shots"`
	MaxShots    int     `yaml:"max_shots"`
	MinDelay    float64 `yaml:"min_delay"` // volley delay with few enemies left
	MaxDelay    float64 `yaml:"max_delay"` // volley delay with a full formation
	ForwardBias float64 `yaml:"forward_bias"`
	ShotSpeed   float64 `yaml:"shot_speed"` // field heights per second
	ShotWidth   float64 `yaml:"shot_width"`
	ShotHeight  float64 `yaml:"shot_height"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"`
	Nudge        float64 `yaml:"nudge"`
	Cooldown     float64 `yaml:"cooldown"`   // seconds between player shots
	ShotSpeed    float64 `yaml:"shot_speed"` // field heights per second
}

// InvadersGameplay defines lives.
type InvadersGameplay struct {
	Lives int `yaml:"lives"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid  SnakeGrid  `yaml:"grid"`
	Speed SnakeSpeed `yaml:"speed"`
}

// SnakeGrid defines the board.
type SnakeGrid struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	StartLength int `yaml:"start_length"`
}

// SnakeSpeed defines the score-driven step interval.
type SnakeSpeed struct {
	BaseInterval  float64 `yaml:"base_interval"` // seconds per step at score 0
	PerFruit      float64 `yaml:"per_fruit"`     // multiplier gain per point
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Speed   TetrisSpeed   `yaml:"speed"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisBoard defines the well.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisSpeed defines the level-driven gravity interval.
type TetrisSpeed struct {
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  float64 `yaml:"min_interval"`
	LevelFactor  float64 `yaml:"level_factor"`
	LevelScore   int     `yaml:"level_score"` // score per level
}

// TetrisScoring defines points per cleared-line count (1..4).
type TetrisScoring struct {
	Lines []int `yaml:"lines"`
}

// T2048Config contains all configuration for the tile-merge game.
type T2048Config struct {
	StartTiles  int     `yaml:"start_tiles"`
	FourChance  float64 `yaml:"four_chance"`
	TargetValue int     `yaml:"target_value"`
}
