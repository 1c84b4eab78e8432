package leaveerrors

import (
	"fmt"
	"net/http"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrCoworkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"coworker not found",
		http.StatusNotFound,
	)
	ErrAmbiguousTarget = apperror.New(
		apperror.CodeInvalidInput,
		"coworker_id and new_hire cannot both be set",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type",
		http.StatusBadRequest,
	)
	ErrDelegationRequiresAdmin = apperror.New(
		apperror.CodeForbidden,
		"only administrators can apply leave on behalf of someone else",
		http.StatusForbidden,
	)
)

// InsufficientBalance membawa sisa saldo agar client bisa menampilkannya.
func InsufficientBalance(leaveType string, remaining, requested int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInsufficientBalance,
		fmt.Sprintf("insufficient %s leave balance, %d day(s) remaining", leaveType, remaining),
		http.StatusBadRequest,
	).WithDetails(map[string]int{
		"remaining": remaining,
		"requested": requested,
	})
}
