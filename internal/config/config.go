// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     ActorConfig      `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines jump and fall parameters.
type RunnerPhysics struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"`
	AnimSpeed          float64 `yaml:"anim_speed"`
}

// ActorConfig defines the player box in logical pixels.
type ActorConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CrouchHeight float64 `yaml:"crouch_height"`
	GroundY      float64 `yaml:"ground_y"`  // actor top when resting on the ground
	CeilingY     float64 `yaml:"ceiling_y"` // actor top when resting on the ceiling
	HitboxMargin float64 `yaml:"hitbox_margin"`
}

// RunnerObstacles defines cactus and bird spawning.
type RunnerObstacles struct {
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	SpawnMargin      float64   `yaml:"spawn_margin"`
	FirstInterval    float64   `yaml:"first_interval"`
	IntervalBase     float64   `yaml:"interval_base"`
	IntervalPerSpeed float64   `yaml:"interval_per_speed"`
	IntervalMin      float64   `yaml:"interval_min"`
	IntervalJitter   float64   `yaml:"interval_jitter"`
	Pattern          []float64 `yaml:"pattern"` // cumulative thresholds for 1, 2 cacti; remainder is 3
	BirdMinScore     float64   `yaml:"bird_min_score"`
	BirdChance       float64   `yaml:"bird_chance"`
	BirdLift         float64   `yaml:"bird_lift"`
	BirdLiftJitter   float64   `yaml:"bird_lift_jitter"`
}

// ScoringConfig defines per-obstacle awards and the continuous trickle.
type ScoringConfig struct {
	PerObstacle float64 `yaml:"per_obstacle"`
	PerBird     float64 `yaml:"per_bird"`
	PerTick     float64 `yaml:"per_tick"`
}

// WorldConfig defines decorative scenery.
type WorldConfig struct {
	GroundLineY   float64 `yaml:"ground_line_y"`
	CeilingLineY  float64 `yaml:"ceiling_line_y"`
	DayNightEvery float64 `yaml:"day_night_every"`
	Clouds        int     `yaml:"clouds"`
	Stars         int     `yaml:"stars"`
	Planets       int     `yaml:"planets"`
	DemoEvery     float64 `yaml:"demo_every"` // demo action period in dt units
}

// FlappyConfig contains all configuration for Flappy.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Player     ActorConfig      `yaml:"player"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`
	MoveFactor    float64 `yaml:"move_factor"` // pipes move speed*dt*MoveFactor
	DemoAmplitude float64 `yaml:"demo_amplitude"`
	DemoSpeed     float64 `yaml:"demo_speed"`
}

// FlappyPipes defines pipe geometry and how it tightens with difficulty.
type FlappyPipes struct {
	Width            float64 `yaml:"width"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	RemoveMargin     float64 `yaml:"remove_margin"`
	SecondOffset     float64 `yaml:"second_offset"` // fraction of interval for the second initial pipe
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	IntervalBase     float64 `yaml:"interval_base"`
	IntervalPerLevel float64 `yaml:"interval_per_level"`
	IntervalMin      float64 `yaml:"interval_min"`
	GapBase          float64 `yaml:"gap_base"`
	GapPerLevel      float64 `yaml:"gap_per_level"`
	GapMin           float64 `yaml:"gap_min"`
	BandMargin       float64 `yaml:"band_margin"` // minY and bottom margin of the gap band
	MinRange         float64 `yaml:"min_range"`
	ChaosEvery       float64 `yaml:"chaos_every"`
	ChaosCap         float64 `yaml:"chaos_cap"`
	ChaosScale       float64 `yaml:"chaos_scale"`
}

// GravityConfig contains all configuration for Gravity Flip.
type GravityConfig struct {
	Physics    GravityPhysics   `yaml:"physics"`
	Player     ActorConfig      `yaml:"player"`
	Asteroids  GravityAsteroids `yaml:"asteroids"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GravityPhysics defines the flipping gravity.
type GravityPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	AnimSpeed       float64 `yaml:"anim_speed"`
	SpeedFactorBase float64 `yaml:"speed_factor_base"`
	SpeedFactorDiv  float64 `yaml:"speed_factor_div"`
}

// GravityAsteroids defines asteroid spawning.
type GravityAsteroids struct {
	SizeMin          float64 `yaml:"size_min"`
	SizeJitter       float64 `yaml:"size_jitter"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	FirstInterval    float64 `yaml:"first_interval"`
	IntervalBase     float64 `yaml:"interval_base"`
	IntervalPerSpeed float64 `yaml:"interval_per_speed"`
	IntervalMin      float64 `yaml:"interval_min"`
	IntervalJitter   float64 `yaml:"interval_jitter"`
	LaneReroll       float64 `yaml:"lane_reroll"` // probability of moving off a repeated lane
	RotationMin      float64 `yaml:"rotation_min"`
	RotationMax      float64 `yaml:"rotation_max"`
}

// ColorConfig contains all configuration for Color Match.
type ColorConfig struct {
	Player     ActorConfig      `yaml:"player"`
	Barriers   ColorBarriers    `yaml:"barriers"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ColorBarriers defines barrier spawning and the crossing threshold.
type ColorBarriers struct {
	Palette          int     `yaml:"palette"`
	WidthMin         float64 `yaml:"width_min"`
	WidthJitter      float64 `yaml:"width_jitter"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	IntervalBase     float64 `yaml:"interval_base"`
	IntervalPerSpeed float64 `yaml:"interval_per_speed"`
	IntervalMin      float64 `yaml:"interval_min"`
	CrossFraction    float64 `yaml:"cross_fraction"` // of actor width
}

// BlockConfig contains all configuration for Block Puzzle.
type BlockConfig struct {
	Board BlockBoard `yaml:"board"`
}

// BlockBoard defines scoring and dealing. The board itself is always 8x8.
type BlockBoard struct {
	Colors        int `yaml:"colors"`
	LineScore     int `yaml:"line_score"`
	DealAttempts  int `yaml:"deal_attempts"`
	DemoCells     int `yaml:"demo_cells"`
	DemoCycleTime int `yaml:"demo_cycle_time"`
}

// DifficultyConfig defines how speed grows with score.
// Speed is a pure function of score: base*scale + floor(score/step_every)*step_gain.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`     // false freezes progression at base speed
	BaseSpeed  float64 `yaml:"base_speed"`  // speed at score 0
	SpeedScale float64 `yaml:"speed_scale"` // preset multiplier on base speed
	StepEvery  float64 `yaml:"step_every"`  // score per difficulty step
	StepGain   float64 `yaml:"step_gain"`   // speed added per step
	LevelCap   float64 `yaml:"level_cap"`   // saturating level for continuous difficulty (0 = none)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpeedScaleForPreset returns the base speed multiplier for a difficulty preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.85
	case DifficultyHard:
		return 1.2
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a preset. An empty preset keeps the config.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Enabled = !IsFixedPreset(preset)
	cfg.SpeedScale = SpeedScaleForPreset(preset)
}
