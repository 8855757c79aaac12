package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltinItems(t *testing.T) {
	c := Default()
	require.Equal(t, 10, c.Len())
	assert.Same(t, c, Default())

	e, ok := c.Lookup("Shadowfang")
	require.True(t, ok)
	assert.Equal(t, Epic, e.Rarity)
	assert.Equal(t, "A blade that whispers the secrets of the night.", e.Description)
	assert.Equal(t, 87, e.Power)

	assert.Equal(t, "Shadowfang", c.At(0).Name)
	assert.Equal(t, "Crystal Aegis", c.At(c.Len()-1).Name)
}

func TestLookup_IgnoresCase(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		for _, q := range []string{name, strings.ToLower(name), strings.ToUpper(name)} {
			e, ok := c.Lookup(q)
			require.True(t, ok, q)
			assert.Equal(t, name, e.Name)
		}
	}

	_, ok := c.Lookup("Excalibur")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	ok := Record{Rarity: Rare, Description: "d", Power: 1}

	tests := []struct {
		name    string
		entries []Entry
		errSub  string
	}{
		{"empty", nil, "no items"},
		{"blank name", []Entry{{Name: " ", Record: ok}}, "name is required"},
		{"bad rarity", []Entry{{Name: "X", Record: Record{Rarity: "Mythic"}}}, "unknown rarity"},
		{"negative power", []Entry{{Name: "X", Record: Record{Rarity: Common, Power: -1}}}, "power"},
		{"case collision", []Entry{{Name: "Orb", Record: ok}, {Name: "ORB", Record: ok}}, "collides"},
		{"exact duplicate", []Entry{{Name: "Orb", Record: ok}, {Name: "Orb", Record: ok}}, "collides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := MustNew(Entry{Name: "Orb", Record: Record{Rarity: Common}})
	es := c.Entries()
	es[0].Name = "changed"
	assert.Equal(t, "Orb", c.At(0).Name)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, `
[[item]]
name = "Moonlit Orb"
rarity = "Rare"
description = "Glows faintly."
power = 61

[[item]]
name = "Rusty Key"
rarity = "Common"
description = "Opens nothing."
power = 3
`)
	c, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Moonlit Orb", "Rusty Key"}, c.Names())

	e, ok := c.Lookup("moonlit orb")
	require.True(t, ok)
	assert.Equal(t, Rare, e.Rarity)
	assert.Equal(t, 61, e.Power)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadFile(writeFile(t, "[[item]]\nname = \"A\"\nrarity = \"Rare\"\nweight = 4\n"))
	require.Error(t, err)

	_, err = LoadFile(writeFile(t, "[[item]]\nname = \"A\"\nrarity = \"Rare\"\n[[item]]\nname = \"a\"\nrarity = \"Rare\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")

	_, err = LoadFile(writeFile(t, ""))
	require.ErrorIs(t, err, ErrEmpty)
}
