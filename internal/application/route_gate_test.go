package application

import (
	"context"
	"testing"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccessFor(t *testing.T) {
	tests := []struct {
		state domain.SessionState
		want  Access
	}{
		{domain.SessionPending, AccessPending},
		{domain.SessionAnonymous, AccessDenied},
		{domain.SessionAuthorized, AccessGranted},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, AccessFor(tt.state))
		})
	}
}

func TestRouteGateStartsPending(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	auth := mocks.NewMockAuthGateway(t)
	store := NewSessionStore(tokens, auth)

	gate := NewRouteGate(store)
	defer gate.Close()

	assert.Equal(t, AccessPending, gate.Access())
}

func TestRouteGateFollowsSessionTransitions(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	auth := mocks.NewMockAuthGateway(t)
	store := NewSessionStore(tokens, auth)

	gate := NewRouteGate(store)
	defer gate.Close()

	var seen []Access
	cancel := gate.Subscribe(func(a Access) { seen = append(seen, a) })
	defer cancel()

	tokens.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	tokens.EXPECT().Clear(mockAnyContext()).Return(nil)

	require.NoError(t, store.Login(context.Background(), "tok", domain.UserSummary{ID: 1, Username: "ada"}))
	assert.Equal(t, AccessGranted, gate.Access())

	require.NoError(t, store.Logout(context.Background()))
	assert.Equal(t, AccessDenied, gate.Access())

	// A fresh login after logout grants again; no decision survives the cycle.
	require.NoError(t, store.Login(context.Background(), "tok2", domain.UserSummary{ID: 1, Username: "ada"}))
	assert.Equal(t, AccessGranted, gate.Access())

	assert.Equal(t, []Access{AccessGranted, AccessDenied, AccessGranted}, seen)
}

func TestRouteGateCloseDetaches(t *testing.T) {
	tokens := mocks.NewMockTokenStore(t)
	auth := mocks.NewMockAuthGateway(t)
	store := NewSessionStore(tokens, auth)

	gate := NewRouteGate(store)
	gate.Close()

	tokens.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	require.NoError(t, store.Login(context.Background(), "tok", domain.UserSummary{ID: 1, Username: "ada"}))

	// The gate keeps its last decision once detached.
	assert.Equal(t, AccessPending, gate.Access())
}
