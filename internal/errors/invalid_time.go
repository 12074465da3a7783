package errors

import "net/http"

var ErrInvalidTime = &Exception{
	Message:    "time must be in HH:MM format",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDueDate = &Exception{
	Message:    "dueDate must be an RFC 3339 timestamp",
	StatusCode: http.StatusBadRequest,
}
