package errors

import "net/http"

var ErrTaskNameRequired = &Exception{
	Message:    "task name is required",
	StatusCode: http.StatusBadRequest,
}
