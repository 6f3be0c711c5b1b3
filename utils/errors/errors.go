package errors

import (
	"encoding/json"
	stderrors "errors"

	"github.com/muhammadheryan/warehouse/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return constant.ErrorTypeMessage[c.errType] + ": " + c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Detail() string {
	return c.detail
}

// Is reports equality on the error type only, so errors.Is(err, SetCustomError(t)) ignores detail.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

func (c CustomError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	}{
		Code:    c.ErrorCode(),
		Message: constant.ErrorTypeMessage[c.errType],
		Detail:  c.detail,
	})
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// TypeOf returns the error type carried by err, or ErrInternal for foreign errors.
func TypeOf(err error) constant.ErrorType {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType
	}
	return constant.ErrInternal
}
