package employeeerrors

import (
	"net/http"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmployeeNumber = apperror.New(
		apperror.CodeConflict,
		"employee number already exists",
		http.StatusConflict,
	)
	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrCannotDeactivateAdmin = apperror.New(
		apperror.CodeInvalidState,
		"administrator accounts cannot be deactivated",
		http.StatusBadRequest,
	)
)
