package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	v := New()
	require.True(t, v.IsValidName("info"))
	require.True(t, v.IsValidName("_hidden"))
	require.True(t, v.IsValidName("a1_b2"))
	require.False(t, v.IsValidName("1abc"))
	require.False(t, v.IsValidName("has-dash"))
	require.False(t, v.IsValidName(""))
	require.False(t, v.IsValidName("has space"))
}

func TestIsValidAliasMatchesNameRules(t *testing.T) {
	v := New()
	require.Equal(t, v.IsValidName("legacy_col"), v.IsValidAlias("legacy_col"))
	require.False(t, v.IsValidAlias("bad.alias"))
}
