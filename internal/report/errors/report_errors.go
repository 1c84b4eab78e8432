package reporterrors

import (
	"net/http"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeInvalidInput,
		"unknown export format, expected csv, xlsx, pdf or json",
		http.StatusBadRequest,
	)
)
