package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)
	require.True(t, data.HasMarket("CHI"))
}

func TestLoad_Override(t *testing.T) {
	path := writeFile(t, `
markets:
  ABQ: Albuquerque
city_aliases:
  ABQ: ["Duke City"]
`)

	data, err := Load(path)
	require.NoError(t, err)
	require.True(t, data.HasMarket("ABQ"))
	require.True(t, data.HasMarket("CHI"))
	require.True(t, data.CityMatches("ABQ", "Duke City"))
}

func TestLoad_ReplacesDays(t *testing.T) {
	path := writeFile(t, `
days:
  - {number: 0, abbreviation: Su, name: Sun}
  - {number: 1, abbreviation: Mo, name: Mon}
  - {number: 2, abbreviation: Tu, name: Tue}
  - {number: 3, abbreviation: We, name: Wed}
  - {number: 4, abbreviation: Th, name: Thu}
  - {number: 5, abbreviation: Fr, name: Fri}
  - {number: 6, abbreviation: Sa, name: Sat}
`)

	data, err := Load(path)
	require.NoError(t, err)

	name, err := data.DayName(entities.Tuesday)
	require.NoError(t, err)
	require.Equal(t, "Tue", name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "markets: [not, a, map]"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "markets:\n  chicago: Chicago\n"))
	require.ErrorIs(t, err, entities.ErrUnknownMarket)

	_, err = Load(writeFile(t, "days:\n  - {number: 0, name: Sunday}\n"))
	require.ErrorIs(t, err, entities.ErrUnknownDay)
}
