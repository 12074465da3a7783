package errors

import "net/http"

var ErrEmptyPatch = &Exception{
	Message:    "at least one field must be provided",
	StatusCode: http.StatusBadRequest,
}
