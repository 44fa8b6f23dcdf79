package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Valid())
	for _, cat := range RequiredCategories {
		assert.Contains(t, Categories(), cat)
	}
}

func TestUpdateScalarRule(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Update(CategoryReceiving, "receptions", 0.5)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Receiving.Receptions)
	// Sibling rules in the same category are untouched.
	assert.Equal(t, 0.1, cfg.Receiving.Yards)
	assert.Equal(t, float64(6), cfg.Receiving.Touchdowns)
}

func TestUpdateMergesRangedMap(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Update(CategoryKicking, "fieldGoals", map[string]float64{"50+": 6})
	require.NoError(t, err)

	assert.Equal(t, float64(6), cfg.Kicking.FieldGoals["50+"])
	// Unmentioned distance buckets keep their previous values.
	assert.Equal(t, float64(3), cfg.Kicking.FieldGoals["30-39"])
	assert.Equal(t, float64(1), cfg.Kicking.FieldGoals["0-19"])
}

func TestUpdateReplacesWholeCategory(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Update(CategoryPassing, "", PassingRules{Yards: 0.05, Touchdowns: 6})
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Passing.Yards)
	assert.Equal(t, float64(6), cfg.Passing.Touchdowns)
	assert.Zero(t, cfg.Passing.Interceptions)
}

func TestUpdateRejectsUnknownCategoryAndRule(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Update(Category("blocking"), "yards", 1.0)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	err = cfg.Update(CategoryPassing, "sacksTaken", 1.0)
	assert.ErrorIs(t, err, ErrUnknownRule)

	err = cfg.Update(CategoryPassing, "yards", "a lot")
	assert.ErrorIs(t, err, ErrBadRuleValue)
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Update(CategoryReceiving, "receptions", 0.5))
	require.NoError(t, cfg.Update(CategoryKicking, "fieldGoals", map[string]float64{"50+": 6}))

	text, err := cfg.Export()
	require.NoError(t, err)

	restored := DefaultConfig()
	require.NoError(t, restored.Import(text))

	assert.Equal(t, cfg, restored)
}

func TestImportMergesOverDefaults(t *testing.T) {
	cfg := DefaultConfig()

	// Only passing yards specified; everything else keeps defaults,
	// unknown keys are ignored, a null category is removed.
	err := cfg.Import(`{"passing": {"yards": 0.05, "bonusYards": 9}, "misc": null}`)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Passing.Yards)
	assert.Equal(t, float64(6), cfg.Rushing.Touchdowns)
	assert.Nil(t, cfg.Misc)
	assert.True(t, cfg.Valid())
}

func TestImportMalformedLeavesConfigUntouched(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Update(CategoryReceiving, "receptions", 0.5))
	before := cfg.Clone()

	err := cfg.Import(`{"passing": not json`)
	assert.ErrorIs(t, err, ErrMalformedConfig)
	assert.Equal(t, before, cfg)
}

func TestPresets(t *testing.T) {
	ppr, ok := PresetByKey("ppr")
	require.True(t, ok)
	assert.Equal(t, float64(1), ppr.Config.Receiving.Receptions)

	half, ok := PresetByKey("halfPpr")
	require.True(t, ok)
	assert.Equal(t, 0.5, half.Config.Receiving.Receptions)

	sf, ok := PresetByKey("superFlex")
	require.True(t, ok)
	assert.Equal(t, float64(6), sf.Config.Passing.Touchdowns)

	_, ok = PresetByKey("vampire")
	assert.False(t, ok)
}

func TestResetRestoresDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Update(CategoryPassing, "touchdowns", 6))

	cfg.Reset()

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Kicking.FieldGoals["50+"] = 9
	clone.Passing.Yards = 1

	assert.Equal(t, float64(5), cfg.Kicking.FieldGoals["50+"])
	assert.Equal(t, 0.04, cfg.Passing.Yards)
}
