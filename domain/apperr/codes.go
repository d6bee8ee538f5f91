// Package apperr defines the stable failure codes that travel across
// module boundaries. Modules put a code on a typed response instead of
// returning a bare error, so the HTTP layer can map each kind to a
// status without inspecting error messages.
package apperr

const (
	CodeInvalidArgument    = "invalid_argument"
	CodeDuplicateUser      = "duplicate_user"
	CodeUserNotFound       = "user_not_found"
	CodeAccountInactive    = "account_inactive"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeForbidden          = "forbidden"
)
