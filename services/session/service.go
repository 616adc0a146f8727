package session

import (
	"context"
	"errors"

	"posada/backend"
	"posada/models"
	"posada/utils"

	"go.uber.org/zap"
)

// ErrUnauthenticated signals that no valid session exists for a token.
var ErrUnauthenticated = errors.New("session: unauthenticated")

// Backend is the slice of the API client the session service needs.
type Backend interface {
	Login(ctx context.Context, credentials models.LoginCredentials) (*models.LoginResult, error)
	Me(ctx context.Context, token string) (*models.CurrentUser, error)
	Logout(ctx context.Context, token string) error
}

// Service resolves bearer tokens into session claim sets. It is the
// single owner of session state: created on login, cached in the store,
// destroyed on logout or detected invalidity.
type Service struct {
	Backend Backend
	Store   *Store
}

// NewService wires a session service.
func NewService(api Backend, store *Store) *Service {
	return &Service{Backend: api, Store: store}
}

// Login exchanges credentials for a token and caches the session.
func (s *Service) Login(ctx context.Context, credentials models.LoginCredentials) (*models.LoginResult, error) {
	result, err := s.Backend.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, result.AccessToken, result.User); err != nil {
		// The backend session is live even if the cache write failed;
		// the next Resolve falls back to the API.
		utils.GetLogger().Warn("session cache write failed", zap.Error(err))
	}
	return result, nil
}

// Resolve turns a bearer token into the current user. Order: local
// expiry check, store, backend. A decisive 401 purges the cached
// session and returns ErrUnauthenticated so stale ready state can never
// survive a token invalidation.
func (s *Service) Resolve(ctx context.Context, token string) (*models.CurrentUser, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if TokenExpired(token) {
		_ = s.Store.Delete(ctx, token)
		return nil, ErrUnauthenticated
	}

	user, err := s.Store.Get(ctx, token)
	if err != nil {
		utils.GetLogger().Warn("session cache read failed, falling back to backend", zap.Error(err))
	}
	if user != nil {
		return user, nil
	}

	user, err = s.Backend.Me(ctx, token)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			_ = s.Store.Delete(ctx, token)
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if err := s.Store.Save(ctx, token, *user); err != nil {
		utils.GetLogger().Warn("session cache write failed", zap.Error(err))
	}
	return user, nil
}

// Purge drops the cached session for a token without contacting the
// backend. Call it when another request observes that the backend
// rejected the token, so the gate cannot keep answering ready from the
// cache until the TTL runs out.
func (s *Service) Purge(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.Store.Delete(ctx, token); err != nil {
		utils.GetLogger().Warn("session cache purge failed", zap.Error(err))
	}
}

// Logout invalidates the session on the backend and purges the cache.
// The purge happens regardless of the backend outcome.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.Backend.Logout(ctx, token)
	if delErr := s.Store.Delete(ctx, token); delErr != nil {
		utils.GetLogger().Warn("session cache purge failed", zap.Error(delErr))
	}
	return err
}
