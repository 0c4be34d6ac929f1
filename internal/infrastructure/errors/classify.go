package errors

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

// ClassifyError maps an arbitrary error onto an ErrorCode
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrCodePlatform
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeStartup
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "not found"), strings.Contains(errStr, "no such"):
		return ErrCodeNotFound
	case strings.Contains(errStr, "display"), strings.Contains(errStr, "permission denied"):
		return ErrCodePlatform
	case strings.Contains(errStr, "invalid"):
		return ErrCodeValidation
	}

	return ErrCodeUnknown
}
