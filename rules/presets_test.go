package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopy(t *testing.T) {
	ids := All()
	require.NotEmpty(t, ids)
	ids[0] = "mutated"
	require.Equal(t, NoClass, All()[0])
}

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown(NoClass))
	require.True(t, IsKnown(IOModule))
	require.False(t, IsKnown("no-such-rule"))
	require.False(t, IsKnown(""))
}

func TestLookupPreset(t *testing.T) {
	for _, name := range PresetNames() {
		p, ok := LookupPreset(name)
		require.True(t, ok, name)
		require.Equal(t, name, p.Name)
	}
	_, ok := LookupPreset("nonexistent")
	require.False(t, ok)
}

func TestPresetsDisableOnlyKnownRules(t *testing.T) {
	for _, name := range PresetNames() {
		p, _ := LookupPreset(name)
		for _, id := range p.Disabled {
			require.True(t, IsKnown(id), "%s disables unknown rule %s", name, id)
		}
	}
}

func TestStrictDisablesNothing(t *testing.T) {
	p, ok := LookupPreset("strict")
	require.True(t, ok)
	require.Empty(t, p.Disabled)
	require.Empty(t, p.DisabledSet())
}

func TestDisabledSet(t *testing.T) {
	p, _ := LookupPreset("recommended")
	set := p.DisabledSet()
	require.True(t, set[RequireJSDoc])
	require.False(t, set[NoClass])
	require.Len(t, set, len(p.Disabled))
}
