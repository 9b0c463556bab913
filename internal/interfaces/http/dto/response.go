package dto

import "net/http"

// Every endpoint answers with a flat envelope: a success flag, an
// optional message, and the payload fields spread at the top level.

// StatusForCode maps a domain error code to an HTTP status
func StatusForCode(code string) int {
	switch code {
	case "VALIDATION_ERROR", "INVALID_INPUT":
		return http.StatusBadRequest
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "ALREADY_EXISTS", "CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
