package session

import (
	"testing"

	"posada/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateGate(t *testing.T) {
	admin := &models.CurrentUser{ID: 1, Admin: true}
	roleAdmin := &models.CurrentUser{ID: 2, Roles: []string{models.AdminRole}}
	customer := &models.CurrentUser{ID: 3, Roles: []string{}}

	tests := []struct {
		name         string
		user         *models.CurrentUser
		resolved     bool
		requireAdmin bool
		want         GateState
	}{
		{"unresolved session is loading", nil, false, false, GateLoading},
		{"unresolved stays loading even with a stale user", admin, false, true, GateLoading},
		{"no user is unauthenticated", nil, true, false, GateUnauthenticated},
		{"no user is unauthenticated even without admin requirement", nil, true, true, GateUnauthenticated},
		{"plain customer is ready for customer areas", customer, true, false, GateReady},
		{"plain customer is unauthorized for the back office", customer, true, true, GateUnauthorized},
		{"admin flag is ready for the back office", admin, true, true, GateReady},
		{"administrators role is ready for the back office", roleAdmin, true, true, GateReady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateGate(tt.user, tt.resolved, tt.requireAdmin))
		})
	}
}
