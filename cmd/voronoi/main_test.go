package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5 -2")
	require.NoError(t, err)
	assert.Equal(t, voronoi.Point{X: 1.5, Y: -2}, p)

	p, err = parsePoint("  3\t4 ")
	require.NoError(t, err)
	assert.Equal(t, voronoi.Point{X: 3, Y: 4}, p)

	_, err = parsePoint("1 2 3")
	assert.Error(t, err)
	_, err = parsePoint("one 2")
	assert.EqualError(t, err, `parsing x: strconv.ParseFloat: parsing "one": invalid syntax`)
	_, err = parsePoint("1 two")
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	input := strings.Join([]string{
		"# corners",
		"0 0",
		"",
		"10 0",
		"   # indented comment",
		"5 8.5",
	}, "\n")
	points, err := readPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.5}}, points)

	_, err = readPoints(strings.NewReader("0 0\n1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteFile(t *testing.T) {
	_, err := app.Parse([]string{"--format", "yaml"})
	require.NoError(t, err)

	points := []voronoi.Point{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 2, Y: 3}}
	diagram, err := voronoi.FromPoints(points)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sites.yaml")
	require.NoError(t, writeFile(path, diagram))
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	loaded, err := voronoi.LoadSites(file)
	require.NoError(t, err)
	assert.Equal(t, points, loaded)

	err = writeFile(filepath.Join(t.TempDir(), "missing", "sites.yaml"), diagram)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}
