package engine

import (
	"strings"
	"time"
)

// DelaiContestationMois is the dispute window after publication, in calendar months.
const DelaiContestationMois = 2

type ContestationWorkflowService struct{}

func NewContestationWorkflowService() *ContestationWorkflowService {
	return &ContestationWorkflowService{}
}

// CalculerDateLimite adds two calendar months to the publication date. A day missing
// from the target month clamps to its last day.
func (s *ContestationWorkflowService) CalculerDateLimite(datePublication time.Time) time.Time {
	return addMonthsClamped(datePublication, DelaiContestationMois)
}

// VerifierDelaiContestation fails when the dispute day, read in the publication
// time zone, is after the deadline day.
func (s *ContestationWorkflowService) VerifierDelaiContestation(datePublication, dateContestation time.Time) error {
	limite := s.CalculerDateLimite(datePublication)
	if jour(dateContestation, limite.Location()).After(jour(limite, limite.Location())) {
		return newDomainError(CodeDeadlineExceeded, "contestation filed on %s after the deadline %s",
			dateContestation.Format(time.DateOnly), limite.Format(time.DateOnly))
	}
	return nil
}

func (s *ContestationWorkflowService) ValiderResolution(commentaire string) error {
	if strings.TrimSpace(commentaire) == "" {
		return newDomainError(CodeCommentRequired, "a resolution comment is required")
	}
	return nil
}

// DeterminerStatutResolution returns the terminal status for a resolution.
func (s *ContestationWorkflowService) DeterminerStatutResolution(acceptee bool, commentaire string) (StatutContestation, error) {
	if err := s.ValiderResolution(commentaire); err != nil {
		return "", err
	}
	if acceptee {
		return StatutContestationAcceptee, nil
	}
	return StatutContestationRejetee, nil
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func jour(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
