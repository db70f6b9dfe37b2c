package pkg

import "time"

// AppError is the sanitized error shape returned by HTTP handlers. The wrapped
// Err is logged internally and never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success:   false,
		Code:      e.Code,
		Error:     e.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
