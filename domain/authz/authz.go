// Package authz decides whether a caller may mutate an owned resource.
package authz

// IsOwner reports whether the caller is the recorded author of a
// resource. Only meaningful once the resource is known to exist; the
// caller id is empty for anonymous requests and never matches.
func IsOwner(resourceAuthorID, callerID string) bool {
	if callerID == "" {
		return false
	}
	return resourceAuthorID == callerID
}
