package engine

import (
	"errors"
	"fmt"
)

// Code is the machine-readable identifier of a business-rule violation.
type Code string

const (
	CodeInvalidFenetre     Code = "INVALID_FENETRE"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeCommentRequired    Code = "COMMENT_REQUIRED"
	CodeInvalidPeriode     Code = "INVALID_PERIODE"
	CodeBaremeIntrouvable  Code = "BAREME_INTROUVABLE"
	CodeTotauxIncoherents  Code = "TOTAUX_INCOHERENTS"
	CodeTypeCalculInconnu  Code = "TYPE_CALCUL_INCONNU"
	CodeMontantBaseInvalid Code = "MONTANT_BASE_INVALIDE"
)

// DomainError is raised by the engine when a business rule rejects its input.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newDomainError(code Code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code Code) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

// CodeOf returns the domain code carried by err, if any.
func CodeOf(err error) (Code, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}
