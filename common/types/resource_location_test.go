package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceLocation(t *testing.T) {
	rl, err := ParseResourceLocation("minecraft:dirt")
	require.NoError(t, err)
	assert.Equal(t, "minecraft", rl.Namespace)
	assert.Equal(t, "dirt", rl.Path)
	assert.Equal(t, "minecraft:dirt", rl.String())
}

func TestParseResourceLocationDefaultNamespace(t *testing.T) {
	rl, err := ParseResourceLocation("brand")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:brand", rl.String())

	rl, err = ParseResourceLocation(":brand")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:brand", rl.String())
}

func TestParseResourceLocationPathChars(t *testing.T) {
	rl, err := ParseResourceLocation("mymod:textures/block/stone_0.png")
	require.NoError(t, err)
	assert.Equal(t, "mymod", rl.Namespace)
	assert.Equal(t, "textures/block/stone_0.png", rl.Path)
}

func TestParseResourceLocationInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"minecraft:",
		"Upper:case",
		"minecraft:no spaces",
		"bad/ns:path",
		"minecraft:trailing!",
	} {
		_, err := ParseResourceLocation(s)
		assert.Error(t, err, "input %q", s)
	}
}
