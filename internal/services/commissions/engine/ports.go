package engine

import (
	"context"
	"time"
)

// CommissionSource feeds step 2 of the bordereau workflow.
type CommissionSource interface {
	FindCommissionsForPeriode(ctx context.Context, in BordereauInput) ([]Commission, error)
	FindBaremeForCommission(ctx context.Context, commission Commission) (*Bareme, error)
	FindStatutAPayer(ctx context.Context) (*Statut, error)
}

type RepriseStore interface {
	FindReprisesForPeriode(ctx context.Context, in BordereauInput) ([]Reprise, error)
	UpdateReprise(ctx context.Context, id string, update RepriseUpdate) error
}

type RecurrenceSource interface {
	FindRecurrencesForPeriode(ctx context.Context, in BordereauInput) ([]RecurrenceCandidate, error)
	// FindRecurrencesNonIncluses returns active recurring lines generated up to the period that no statement carries yet.
	FindRecurrencesNonIncluses(ctx context.Context, in BordereauInput) ([]CommissionRecurrente, error)
	MarquerRecurrenceIncluse(ctx context.Context, id, bordereauID string) error
}

// RecurrenceSuspender halts or resumes recurring commission for a contract.
type RecurrenceSuspender interface {
	SuspendRecurrences(ctx context.Context, contratID string) error
	ResumeRecurrences(ctx context.Context, contratID string) error
}

type ReportStore interface {
	FindReportsNegatifs(ctx context.Context, in BordereauInput) ([]ReportNegatif, error)
	ApurerReport(ctx context.Context, id, bordereauID string) error
	CreateReportNegatif(ctx context.Context, organisationID string, report ReportNegatifResult) (*ReportNegatif, error)
}

type BordereauStore interface {
	CreateBordereau(ctx context.Context, in BordereauInput) (*Bordereau, error)
	CreateLigne(ctx context.Context, ligne Ligne) (*Ligne, error)
	UpdateBordereau(ctx context.Context, id string, update BordereauUpdate) (*Bordereau, error)
}

// AuditSink appends write-once audit records.
type AuditSink interface {
	Audit(ctx context.Context, entry AuditEntry) error
}

// BordereauRepository groups every collaborator the bordereau workflow calls.
type BordereauRepository interface {
	CommissionSource
	RepriseStore
	RecurrenceSource
	RecurrenceSuspender
	ReportStore
	BordereauStore
	AuditSink
}

// RepriseLookup serves the clawback calculation.
type RepriseLookup interface {
	// FindCommissionsVerseesDansFenetre returns the amounts paid for a contract between two periods, both inclusive.
	FindCommissionsVerseesDansFenetre(ctx context.Context, contratID, debut, fin string) ([]float64, error)
	FindCommissionDuePeriode(ctx context.Context, contratID, periode string) (float64, error)
}

// RecurrenceLookup serves the recurring-commission generator.
type RecurrenceLookup interface {
	IsEcheanceReglee(ctx context.Context, echeanceID string) (bool, error)
	FindContratByID(ctx context.Context, id string) (*Contrat, error)
	// FindBaremeAtDate returns the grid version in force at date, or nil when none is.
	FindBaremeAtDate(ctx context.Context, contrat Contrat, date time.Time) (*Bareme, error)
	// GetRecurrenceMonthNumber returns the 1-based month number the next recurrence would carry.
	GetRecurrenceMonthNumber(ctx context.Context, contratID string) (int, error)
	PersistRecurrence(ctx context.Context, recurrence CommissionRecurrente) (*CommissionRecurrente, error)
}

type CommissionCalculator interface {
	Calculer(reference string, bareme Bareme, montantBase float64) (CommissionResult, error)
}

type RepriseCalculator interface {
	CalculerReprise(ctx context.Context, contratID string, typeReprise TypeReprise, fenetreMois int, periode string) (RepriseResult, error)
	CalculerReportNegatif(apporteurID, periode string, brut, reprises, acomptes float64) (ReportNegatifResult, error)
}

type RecurrenceGenerator interface {
	GenererRecurrence(ctx context.Context, contratID, echeanceID string, dateEncaissement time.Time) (RecurrenceResult, error)
}
