package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	assert.Equal(t, defaultTheme, p.Theme)
	assert.Empty(t, p.Recent)
	assert.Empty(t, p.LastQuery())
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "shutter")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "theme = \" Slate \"\nrecent_queries = [\" sunset \", \"\", \"Sunset\", \"owls\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte(body), 0o644))

	p := Load("")
	assert.Equal(t, "Slate", p.Theme)
	assert.Equal(t, []string{"sunset", "owls"}, p.Recent)
	assert.Equal(t, "sunset", p.LastQuery())
}

func TestLoad_BadFilesFallBackToDefaults(t *testing.T) {
	cases := map[string]string{
		"empty theme":  "theme = \"\"\n",
		"invalid toml": "not valid toml {{{\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			assert.Equal(t, defaultTheme, Load(path).Theme)
		})
	}
}

func TestSave_RoundTripsAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	p := Prefs{Theme: "Kanagawa"}
	p.Remember("owls")
	p.Remember("red fox")
	require.NoError(t, Save(path, p))

	loaded := Load(path)
	assert.Equal(t, "Kanagawa", loaded.Theme)
	assert.Equal(t, []string{"red fox", "owls"}, loaded.Recent)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestRemember_DedupesAndCaps(t *testing.T) {
	var p Prefs
	for i := range MaxRecent + 5 {
		p.Remember(fmt.Sprintf("q%d", i))
	}
	require.Len(t, p.Recent, MaxRecent)
	assert.Equal(t, "q14", p.LastQuery())

	p.Remember("  Q10 ")
	assert.Equal(t, "Q10", p.Recent[0])
	assert.NotContains(t, p.Recent[1:], "q10")
	assert.Len(t, p.Recent, MaxRecent)

	p.Remember("   ")
	assert.Equal(t, "Q10", p.LastQuery())
}
