// Package session owns the client session lifecycle: the bearer token,
// the cached claim set, and the gate that decides what a request may do.
package session

import "posada/models"

// GateState is the access decision for a request.
type GateState string

const (
	GateLoading         GateState = "loading"
	GateUnauthenticated GateState = "unauthenticated"
	GateUnauthorized    GateState = "unauthorized"
	GateReady           GateState = "ready"
)

// EvaluateGate computes the gate state from a resolved session. It is
// pure: no fetching, no side effects. resolved is false while the claim
// set is still being loaded; requireAdmin demands the back-office
// entitlement on top of authentication.
func EvaluateGate(user *models.CurrentUser, resolved bool, requireAdmin bool) GateState {
	if !resolved {
		return GateLoading
	}
	if user == nil {
		return GateUnauthenticated
	}
	if requireAdmin && !user.IsAdmin() {
		return GateUnauthorized
	}
	return GateReady
}
