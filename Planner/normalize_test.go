package Planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseValue(s)
	require.NoError(t, err)
	return v
}

func TestFlattenStringIdentity(t *testing.T) {
	v := mustParse(t, `"Scaling and root planing per quadrant."`)
	assert.Equal(t, "Scaling and root planing per quadrant.", Flatten(v))
}

func TestFlattenArrayNumberedList(t *testing.T) {
	v := mustParse(t, `["a","b","c"]`)
	assert.Equal(t, "1. a\n2. b\n3. c", Flatten(v))
}

func TestFlattenObjectScalarEntries(t *testing.T) {
	v := mustParse(t, `{"k1":"v1","k2":"v2"}`)
	assert.Equal(t, "• k1: v1\n\n• k2: v2", Flatten(v))
}

func TestFlattenObjectMultilineEntry(t *testing.T) {
	v := mustParse(t, `{"steps":["a","b"]}`)
	assert.Equal(t, "steps:\n• 1. a\n• 2. b", Flatten(v))
}

func TestFlattenScalars(t *testing.T) {
	assert.Equal(t, "7", Flatten(mustParse(t, `7`)))
	assert.Equal(t, "7.5", Flatten(mustParse(t, `7.5`)))
	assert.Equal(t, "true", Flatten(mustParse(t, `true`)))
	assert.Equal(t, "false", Flatten(mustParse(t, `false`)))
	assert.Equal(t, "null", Flatten(mustParse(t, `null`)))
}

func TestFlattenPreservesKeyOrder(t *testing.T) {
	v := mustParse(t, `{"zebra":"1","alpha":"2","mid":"3"}`)
	assert.Equal(t, "• zebra: 1\n\n• alpha: 2\n\n• mid: 3", Flatten(v))
}

func TestCoercePlanArrayField(t *testing.T) {
	v := mustParse(t, `{
		"diagnosis": "Chronic periodontitis",
		"prognosis": "Fair",
		"phaseI": ["Scaling", "Root planing"],
		"phaseII": "Not indicated",
		"maintenance": "3 month recall",
		"additionalRecommendations": "Stop smoking"
	}`)
	plan, ok := CoercePlan(v)
	require.True(t, ok)
	assert.Equal(t, "1. Scaling\n2. Root planing", plan.PhaseI)
	assert.Empty(t, ValidatePlan(plan))
}

func TestCoercePlanMissingFieldFails(t *testing.T) {
	v := mustParse(t, `{"diagnosis": "x"}`)
	_, ok := CoercePlan(v)
	assert.False(t, ok)
}

func TestCoercePlanNonObjectFails(t *testing.T) {
	_, ok := CoercePlan(mustParse(t, `["not","an","object"]`))
	assert.False(t, ok)
}
