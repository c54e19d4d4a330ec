package models

// ErrorNotFound is returned when a referenced record does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorForbidden is returned when a role or ownership check fails.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorValidation is returned for malformed input.
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorBadRequest is returned when a workflow rule rejects the request.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string { return e.Message }

// ErrorUnauthorized is returned for bad credentials or tokens.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

const MessageNotEnoughPermissions = "Not enough permissions"

func NotFound(message string) error {
	return ErrorNotFound{Message: message}
}

func Forbidden() error {
	return ErrorForbidden{Message: MessageNotEnoughPermissions}
}

func Validation(message string) error {
	return ErrorValidation{Message: message}
}

func BadRequest(message string) error {
	return ErrorBadRequest{Message: message}
}

func Unauthorized(message string) error {
	return ErrorUnauthorized{Message: message}
}
