package apperrors

import "net/http"

type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeReferenceNotFound Code = "REFERENCE_NOT_FOUND"
	CodeNotFound          Code = "NOT_FOUND"
	CodeForbidden         Code = "FORBIDDEN"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodeInternal          Code = "INTERNAL"
)

// HTTPStatus maps an error code to the status the boundary responds with.
// A referenced parent that does not exist is a client error, not a 404:
// the target of the request is the new resource, not the missing parent.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeReferenceNotFound:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
