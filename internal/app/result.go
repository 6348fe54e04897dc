// internal/app/result.go
package app

import (
	"errors"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"
)

// ResultKind tells the loop what a single check produced.
type ResultKind int

const (
	ResultUpdate ResultKind = iota
	ResultEmpty
	ResultValidationError
	ResultTransportError
)

func (k ResultKind) String() string {
	switch k {
	case ResultUpdate:
		return "update"
	case ResultEmpty:
		return "empty"
	case ResultValidationError:
		return "validation_error"
	case ResultTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// CheckResult is the outcome of one fetch/validate/parse pass.
type CheckResult struct {
	Kind ResultKind
	// Homework and Message are set for ResultUpdate.
	Homework homework.Homework
	Message  string
	// StatusCode is the HTTP status for transport errors caused by a non-200 answer.
	StatusCode int
	Err        error
}

func updateResult(hw homework.Homework, msg string) CheckResult {
	return CheckResult{Kind: ResultUpdate, Homework: hw, Message: msg}
}

func emptyResult() CheckResult {
	return CheckResult{Kind: ResultEmpty}
}

// failureResult classifies err into a transport or validation failure.
func failureResult(err error) CheckResult {
	var statusErr *practicum.HTTPStatusError
	switch {
	case errors.As(err, &statusErr):
		return CheckResult{Kind: ResultTransportError, StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, practicum.ErrRequest), errors.Is(err, ErrSendFailed):
		return CheckResult{Kind: ResultTransportError, Err: err}
	default:
		return CheckResult{Kind: ResultValidationError, Err: err}
	}
}
