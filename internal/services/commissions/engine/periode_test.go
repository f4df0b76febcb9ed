package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriode(t *testing.T) {
	year, month, err := ParsePeriode("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 3, month)

	for _, bad := range []string{"", "2026-3", "2026/03", "2026-13", "2026-00", "abcd-01", "2026-03-01"} {
		_, _, err := ParsePeriode(bad)
		assert.True(t, IsCode(err, CodeInvalidPeriode), "periode %q", bad)
	}
}

func TestPeriodeSuivante_RollsOverYear(t *testing.T) {
	next, err := PeriodeSuivante("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)

	next, err = PeriodeSuivante("2026-04")
	require.NoError(t, err)
	assert.Equal(t, "2026-05", next)
}

func TestAjouterMois(t *testing.T) {
	cases := []struct {
		periode string
		n       int
		want    string
	}{
		{"2026-03", -2, "2026-01"},
		{"2026-03", -3, "2025-12"},
		{"2026-01", -12, "2025-01"},
		{"2026-01", 0, "2026-01"},
		{"2026-11", 14, "2028-01"},
	}
	for _, tc := range cases {
		got, err := AjouterMois(tc.periode, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %+d", tc.periode, tc.n)
	}
}

func TestFenetrePeriodes(t *testing.T) {
	debut, fin, err := FenetrePeriodes("2026-02", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-12", debut)
	assert.Equal(t, "2026-02", fin)

	debut, fin, err = FenetrePeriodes("2026-02", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02", debut)
	assert.Equal(t, "2026-02", fin)

	_, _, err = FenetrePeriodes("2026-02", 0)
	assert.True(t, IsCode(err, CodeInvalidFenetre))
}

func TestPeriodeOfAndOrdering(t *testing.T) {
	assert.Equal(t, "2026-01", PeriodeOf(date(2026, 1, 31)))
	assert.True(t, AvantPeriode("2025-12", "2026-01"))
	assert.False(t, AvantPeriode("2026-01", "2026-01"))

	debut, err := DebutPeriode("2026-02")
	require.NoError(t, err)
	assert.Equal(t, date(2026, 2, 1), debut)
}
