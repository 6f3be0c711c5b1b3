package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrDuplicateKey
	ErrCapacityExceeded
	ErrNoCapacity
	ErrTransaction
	ErrOrderNotFound
	ErrPickerNotFound
	ErrProductNotPlaced
	ErrReferenced
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrForbidden:        "forbidden",
	ErrDuplicateKey:     "data already exists",
	ErrCapacityExceeded: "rack capacity exceeded",
	ErrNoCapacity:       "no rack with free capacity",
	ErrTransaction:      "transaction failed and was rolled back",
	ErrOrderNotFound:    "order not found",
	ErrPickerNotFound:   "picker not found",
	ErrProductNotPlaced: "product has no rack placement",
	ErrReferenced:       "data is still referenced",
	ErrTooManyRequests:  "rate limit exceeded",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrDuplicateKey:     http.StatusConflict,
	ErrCapacityExceeded: http.StatusConflict,
	ErrNoCapacity:       http.StatusConflict,
	ErrTransaction:      http.StatusInternalServerError,
	ErrOrderNotFound:    http.StatusNotFound,
	ErrPickerNotFound:   http.StatusNotFound,
	ErrProductNotPlaced: http.StatusUnprocessableEntity,
	ErrReferenced:       http.StatusConflict,
	ErrTooManyRequests:  http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrForbidden:        "0005",
	ErrDuplicateKey:     "0006",
	ErrCapacityExceeded: "0007",
	ErrNoCapacity:       "0008",
	ErrTransaction:      "0009",
	ErrOrderNotFound:    "0010",
	ErrPickerNotFound:   "0011",
	ErrProductNotPlaced: "0012",
	ErrReferenced:       "0013",
	ErrTooManyRequests:  "0014",
}
