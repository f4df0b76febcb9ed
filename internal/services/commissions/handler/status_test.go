package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crm-commissions/internal/services/commissions/engine"
)

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{&engine.DomainError{Code: engine.CodeInvalidFenetre}, codes.InvalidArgument},
		{&engine.DomainError{Code: engine.CodeCommentRequired}, codes.InvalidArgument},
		{&engine.DomainError{Code: engine.CodeInvalidPeriode}, codes.InvalidArgument},
		{&engine.DomainError{Code: engine.CodeTypeCalculInconnu}, codes.InvalidArgument},
		{&engine.DomainError{Code: engine.CodeMontantBaseInvalid}, codes.InvalidArgument},
		{&engine.DomainError{Code: engine.CodeDeadlineExceeded}, codes.DeadlineExceeded},
		{&engine.DomainError{Code: engine.CodeBaremeIntrouvable}, codes.NotFound},
		{&engine.DomainError{Code: engine.CodeTotauxIncoherents}, codes.FailedPrecondition},
		{fmt.Errorf("step reprises: %w", &engine.DomainError{Code: engine.CodeInvalidFenetre}), codes.InvalidArgument},
		{status.Error(codes.AlreadyExists, "dup"), codes.AlreadyExists},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, status.Code(toStatus(tc.err)), "%v", tc.err)
	}
	assert.NoError(t, toStatus(nil))
}
