package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

//go:embed defaults/color.yaml
var defaultColorYAML []byte

//go:embed defaults/block.yaml
var defaultBlockYAML []byte

// DefaultRunnerConfig returns the default Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:            0.6,
			JumpImpulse:        -13,
			FastFallMultiplier: 2.5,
			AnimSpeed:          0.12,
		},
		Player: ActorConfig{
			X:            60,
			Width:        40,
			Height:       59,
			CrouchHeight: 35,
			GroundY:      220,
			HitboxMargin: 8,
		},
		Obstacles: RunnerObstacles{
			Width:            26,
			Height:           30,
			SpawnMargin:      10,
			FirstInterval:    80,
			IntervalBase:     95,
			IntervalPerSpeed: 3,
			IntervalMin:      55,
			IntervalJitter:   40,
			Pattern:          []float64{0.68, 0.94},
			BirdMinScore:     350,
			BirdChance:       0.5,
			BirdLift:         40,
			BirdLiftJitter:   30,
		},
		Scoring: ScoringConfig{
			PerObstacle: 1,
			PerBird:     2,
			PerTick:     0.1,
		},
		World: WorldConfig{
			GroundLineY:   280,
			DayNightEvery: 700,
			Clouds:        4,
			DemoEvery:     90,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  6,
			SpeedScale: 1.0,
			StepEvery:  25,
			StepGain:   1,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:       0.45,
			FlapImpulse:   -7.2,
			MoveFactor:    2.2,
			DemoAmplitude: 18,
			DemoSpeed:     0.06,
		},
		Player: ActorConfig{
			X:            130,
			Width:        36,
			Height:       26,
			HitboxMargin: 6,
		},
		Pipes: FlappyPipes{
			Width:            54,
			SpawnMargin:      40,
			RemoveMargin:     10,
			SecondOffset:     0.8,
			SpeedPerLevel:    0.18,
			IntervalBase:     120,
			IntervalPerLevel: 8,
			IntervalMin:      62,
			GapBase:          115,
			GapPerLevel:      3.2,
			GapMin:           72,
			BandMargin:       40,
			MinRange:         40,
			ChaosEvery:       25,
			ChaosCap:         6,
			ChaosScale:       6,
		},
		Scoring: ScoringConfig{
			PerObstacle: 1,
		},
		World: WorldConfig{
			Clouds: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  2,
			SpeedScale: 1.0,
			StepEvery:  14,
			LevelCap:   12,
		},
	}
}

// DefaultGravityConfig returns the default Gravity Flip configuration.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		Physics: GravityPhysics{
			Gravity:         0.6,
			AnimSpeed:       0.12,
			SpeedFactorBase: 0.6,
			SpeedFactorDiv:  10,
		},
		Player: ActorConfig{
			X:            60,
			Width:        40,
			Height:       59,
			CrouchHeight: 35,
			GroundY:      220,
			CeilingY:     20,
			HitboxMargin: 8,
		},
		Asteroids: GravityAsteroids{
			SizeMin:          34,
			SizeJitter:       38,
			SpawnMargin:      10,
			FirstInterval:    70,
			IntervalBase:     90,
			IntervalPerSpeed: 4.6,
			IntervalMin:      50,
			IntervalJitter:   35,
			LaneReroll:       0.6,
			RotationMin:      0.01,
			RotationMax:      0.06,
		},
		Scoring: ScoringConfig{
			PerObstacle: 1,
			PerTick:     0.1,
		},
		World: WorldConfig{
			GroundLineY:  280,
			CeilingLineY: 20,
			Stars:        40,
			Planets:      5,
			DemoEvery:    150,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  6,
			SpeedScale: 1.0,
			StepEvery:  18,
			StepGain:   1,
		},
	}
}

// DefaultColorConfig returns the default Color Match configuration.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Player: ActorConfig{
			X:       60,
			Width:   40,
			Height:  59,
			GroundY: 220,
		},
		Barriers: ColorBarriers{
			Palette:          3,
			WidthMin:         34,
			WidthJitter:      10,
			SpawnMargin:      30,
			IntervalBase:     90,
			IntervalPerSpeed: 2,
			IntervalMin:      55,
			CrossFraction:    0.65,
		},
		Scoring: ScoringConfig{
			PerObstacle: 1,
			PerTick:     0.06,
		},
		World: WorldConfig{
			GroundLineY: 280,
			Clouds:      4,
			DemoEvery:   30,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  5,
			SpeedScale: 1.0,
			StepEvery:  25,
			StepGain:   1,
		},
	}
}

// DefaultBlockConfig returns the default Block Puzzle configuration.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		Board: BlockBoard{
			Colors:        8,
			LineScore:     20,
			DealAttempts:  25,
			DemoCells:     18,
			DemoCycleTime: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "flappy":
		return defaultFlappyYAML
	case "gravity":
		return defaultGravityYAML
	case "color":
		return defaultColorYAML
	case "block":
		return defaultBlockYAML
	default:
		return nil
	}
}
