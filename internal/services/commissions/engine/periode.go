package engine

import (
	"fmt"
	"strconv"
	"time"
)

// ParsePeriode splits a YYYY-MM period into its year and month.
func ParsePeriode(periode string) (int, int, error) {
	if len(periode) != 7 || periode[4] != '-' {
		return 0, 0, newDomainError(CodeInvalidPeriode, "periode %q must use the YYYY-MM format", periode)
	}
	year, err := strconv.Atoi(periode[:4])
	if err != nil {
		return 0, 0, newDomainError(CodeInvalidPeriode, "periode %q has an invalid year", periode)
	}
	month, err := strconv.Atoi(periode[5:])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, newDomainError(CodeInvalidPeriode, "periode %q has an invalid month", periode)
	}
	return year, month, nil
}

// ValiderPeriode fails with INVALID_PERIODE when periode is not YYYY-MM.
func ValiderPeriode(periode string) error {
	_, _, err := ParsePeriode(periode)
	return err
}

func formatPeriode(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PeriodeOf returns the YYYY-MM period containing t.
func PeriodeOf(t time.Time) string {
	return formatPeriode(t.Year(), int(t.Month()))
}

// AjouterMois shifts a period by n months (n may be negative).
func AjouterMois(periode string, n int) (string, error) {
	year, month, err := ParsePeriode(periode)
	if err != nil {
		return "", err
	}
	idx := year*12 + (month - 1) + n
	return formatPeriode(idx/12, idx%12+1), nil
}

// PeriodeSuivante returns the next calendar period; December rolls to January.
func PeriodeSuivante(periode string) (string, error) {
	return AjouterMois(periode, 1)
}

// FenetrePeriodes returns the first and last period of the trailing window of
// `mois` months ending at `periode`, both inclusive.
func FenetrePeriodes(periode string, mois int) (string, string, error) {
	if mois <= 0 {
		return "", "", newDomainError(CodeInvalidFenetre, "fenetre must be positive, got %d", mois)
	}
	debut, err := AjouterMois(periode, -(mois - 1))
	if err != nil {
		return "", "", err
	}
	return debut, periode, nil
}

// AvantPeriode reports whether a is strictly earlier than b. Both must be valid periods.
func AvantPeriode(a, b string) bool {
	return a < b
}

// DebutPeriode returns midnight UTC on the first day of the period.
func DebutPeriode(periode string) (time.Time, error) {
	year, month, err := ParsePeriode(periode)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}
