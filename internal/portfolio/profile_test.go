package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()

	assert.NotEmpty(t, p.About)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Target", p.Experience[0].Organization)
	assert.Equal(t, "Aug 2023 - Present", p.Experience[0].Period())
	require.Len(t, p.Education, 1)
	require.Len(t, p.Certifications, 1)
	assert.Contains(t, p.Certifications[0].Bullets, "Verification code: SRRRPGBSWBRQCCDJ")
	assert.Len(t, p.Highlights, 4)
	assert.NotEmpty(t, p.Skills)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Someone\nabout: hi\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone", p.Name)
	assert.Empty(t, p.Experience)

	p, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Name, p.Name)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("about: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("about: no name\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "", Entry{}.Period())
	assert.Equal(t, "2020", Entry{Start: "2020"}.Period())
	assert.Equal(t, "2021", Entry{End: "2021"}.Period())
}
