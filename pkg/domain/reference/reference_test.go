package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

func TestDefault(t *testing.T) {
	data := Default()

	name, err := data.MarketName("CHI")
	require.NoError(t, err)
	require.Equal(t, "Chicago", name)

	_, err = data.MarketName("XXX")
	require.ErrorIs(t, err, entities.ErrUnknownMarket)

	day, err := data.DayName(entities.Tuesday)
	require.NoError(t, err)
	require.Equal(t, "Tuesday", day)

	require.Len(t, data.Days(), 7)
	require.Equal(t, entities.Sunday, data.Days()[0].Number)
}

func TestDayFromName(t *testing.T) {
	data := Default()

	cases := map[string]entities.DayOfWeek{
		"MONDAY":    entities.Monday,
		"monday":    entities.Monday,
		"Thurs":     entities.Thursday,
		" Sunday ":  entities.Sunday,
		"SATURDAY":  entities.Saturday,
		"wednesday": entities.Wednesday,
	}
	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			day, err := data.DayFromName(input)
			require.NoError(t, err)
			require.Equal(t, expected, day)
		})
	}

	_, err := data.DayFromName("PM")
	require.ErrorIs(t, err, entities.ErrUnknownDay)
}

func TestCityMatches(t *testing.T) {
	data := Default()

	require.True(t, data.CityMatches("CHI", "chicago"))
	require.True(t, data.CityMatches("STL", "St. Louis"))
	require.False(t, data.CityMatches("CHI", "Milwaukee"))
	require.False(t, data.CityMatches("XXX", "Chicago"))
}

func TestNew_Rejects(t *testing.T) {
	days := DefaultDays()

	_, err := New(map[entities.MarketCode]string{"chi": "Chicago"}, days, nil)
	require.ErrorIs(t, err, entities.ErrUnknownMarket)

	_, err = New(nil, days[:6], nil)
	require.ErrorIs(t, err, entities.ErrUnknownDay)

	dup := append(DefaultDays(), Day{Number: entities.Monday, Name: "Funday"})
	_, err = New(nil, dup, nil)
	require.ErrorIs(t, err, entities.ErrUnknownDay)

	_, err = New(nil, days, map[entities.MarketCode][]string{"CHI": {"Chi-town"}})
	require.ErrorIs(t, err, entities.ErrUnknownMarket)
}

func TestMarkets_ReturnsCopy(t *testing.T) {
	data := Default()
	markets := data.Markets()
	markets["CHI"] = "Changed"

	name, err := data.MarketName("CHI")
	require.NoError(t, err)
	require.Equal(t, "Chicago", name)
}

func TestExtend(t *testing.T) {
	base := Default()

	extended, err := base.Extend(
		map[entities.MarketCode]string{"ABQ": "Albuquerque", "CHI": "Chicagoland"},
		map[entities.MarketCode][]string{"ABQ": {"Albuquerque NM"}},
		nil,
	)
	require.NoError(t, err)

	name, err := extended.MarketName("ABQ")
	require.NoError(t, err)
	require.Equal(t, "Albuquerque", name)
	require.True(t, extended.CityMatches("ABQ", "albuquerque nm"))
	require.True(t, extended.CityMatches("STL", "St. Louis"))

	name, err = extended.MarketName("CHI")
	require.NoError(t, err)
	require.Equal(t, "Chicagoland", name)

	require.False(t, base.HasMarket("ABQ"))
	require.Len(t, extended.Days(), 7)
}
