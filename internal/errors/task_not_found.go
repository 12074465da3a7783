package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrTrashedTaskNotFound = &Exception{
	Message:    "task not found in trash",
	StatusCode: http.StatusNotFound,
}
