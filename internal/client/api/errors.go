package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind discriminates gateway call failures. Non-2xx responses map from the
// HTTP status; transport failures and undecodable success bodies get their
// own kinds.
type Kind string

const (
	// KindNetwork is a transport failure with no HTTP response.
	KindNetwork Kind = "network"

	// KindUnauthorized is a 401: the server rejected the credential.
	KindUnauthorized Kind = "unauthorized"

	// KindForbidden is a 403: the server rejected the role.
	KindForbidden Kind = "forbidden"

	// KindNotFound is a 404.
	KindNotFound Kind = "not_found"

	// KindValidation is any other 4xx.
	KindValidation Kind = "validation"

	// KindServer is a 5xx.
	KindServer Kind = "server"

	// KindParse is a malformed body on an otherwise-2xx response. Never
	// silently treated as success.
	KindParse Kind = "parse"
)

// Error is the normalized failure returned by every Gateway operation.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

// KindFromStatus maps a non-2xx HTTP status to its error kind.
func KindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// AsError unwraps err into *Error when it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is a gateway failure of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}
