package scoring

// Preset is a named, ready-made scoring variant derived from the
// defaults. Presets are pure data; callers receive fresh copies.
type Preset struct {
	Key    string
	Name   string
	Config *Config
}

// Presets returns the fixed catalog of scoring presets, each built by
// overriding specific coefficients on top of the defaults.
func Presets() []Preset {
	standard := DefaultConfig()

	ppr := DefaultConfig()
	ppr.Receiving.Receptions = 1

	halfPPR := DefaultConfig()
	halfPPR.Receiving.Receptions = 0.5

	superFlex := DefaultConfig()
	superFlex.Passing.Touchdowns = 6

	return []Preset{
		{Key: "standard", Name: "Standard Scoring", Config: standard},
		{Key: "ppr", Name: "PPR (Point Per Reception)", Config: ppr},
		{Key: "halfPpr", Name: "Half PPR", Config: halfPPR},
		{Key: "superFlex", Name: "SuperFlex", Config: superFlex},
	}
}

// PresetByKey looks up a preset by its catalog key.
func PresetByKey(key string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
