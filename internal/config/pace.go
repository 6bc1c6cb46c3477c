package config

// PacePreset represents a named simulation speed.
type PacePreset string

const (
	PaceSlow   PacePreset = "slow"
	PaceNormal PacePreset = "normal"
	PaceFast   PacePreset = "fast"
)

// TickRateForPreset returns the ticks per second of a pace preset, or 0 for
// an unknown preset.
func TickRateForPreset(preset PacePreset) int {
	switch preset {
	case PaceSlow:
		return 9
	case PaceNormal:
		return 18
	case PaceFast:
		return 36
	default:
		return 0
	}
}

// ApplyPacePreset sets the tick rate from a preset. Unknown presets leave
// the config unchanged and report false.
func ApplyPacePreset(cfg *EngineConfig, preset PacePreset) bool {
	rate := TickRateForPreset(preset)
	if rate == 0 {
		return false
	}
	cfg.Engine.TickRate = rate
	return true
}
