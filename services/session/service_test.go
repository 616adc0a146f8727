package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"posada/backend"
	"posada/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loginResult *models.LoginResult
	loginErr    error
	meUser      *models.CurrentUser
	meErr       error
	meCalls     int
	logoutErr   error
	logoutCalls int
}

func (f *fakeAPI) Login(ctx context.Context, credentials models.LoginCredentials) (*models.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAPI) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meUser, nil
}

func (f *fakeAPI) Logout(ctx context.Context, token string) error {
	f.logoutCalls++
	return f.logoutErr
}

func newTestService(t *testing.T, api *fakeAPI) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	return NewService(api, store)
}

func TestServiceLogin(t *testing.T) {
	user := models.CurrentUser{ID: 5, Login: "ana@example.com", Roles: []string{}}
	api := &fakeAPI{loginResult: &models.LoginResult{AccessToken: "tok", TokenType: "bearer", User: user}}
	svc := newTestService(t, api)

	result, err := svc.Login(context.Background(), models.LoginCredentials{Login: "ana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok", result.AccessToken)

	// The session must now resolve from the cache without hitting the API.
	resolved, err := svc.Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(5), resolved.ID)
	assert.Zero(t, api.meCalls)
}

func TestServiceResolve(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		svc := newTestService(t, &fakeAPI{})
		_, err := svc.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("cache miss falls back to the backend and caches", func(t *testing.T) {
		api := &fakeAPI{meUser: &models.CurrentUser{ID: 9, Roles: []string{}}}
		svc := newTestService(t, api)

		user, err := svc.Resolve(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
		assert.Equal(t, 1, api.meCalls)

		_, err = svc.Resolve(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, 1, api.meCalls, "second resolve must hit the cache")
	})

	t.Run("backend 401 purges the session", func(t *testing.T) {
		api := &fakeAPI{meUser: &models.CurrentUser{ID: 9, Roles: []string{}}}
		svc := newTestService(t, api)

		_, err := svc.Resolve(context.Background(), "tok")
		require.NoError(t, err)

		// Invalidate on the backend side, then force a cache miss.
		require.NoError(t, svc.Store.Delete(context.Background(), "tok"))
		api.meErr = &backend.APIError{Status: http.StatusUnauthorized, Message: "Not authenticated"}

		_, err = svc.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("backend outage is not unauthenticated", func(t *testing.T) {
		api := &fakeAPI{meErr: &backend.TransportError{Err: errors.New("connection refused")}}
		svc := newTestService(t, api)

		_, err := svc.Resolve(context.Background(), "tok")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthenticated)
		var transportErr *backend.TransportError
		assert.ErrorAs(t, err, &transportErr)
	})
}

func TestServiceLogout(t *testing.T) {
	t.Run("purges the cache on success", func(t *testing.T) {
		user := models.CurrentUser{ID: 5, Roles: []string{}}
		api := &fakeAPI{loginResult: &models.LoginResult{AccessToken: "tok", User: user}}
		svc := newTestService(t, api)

		_, err := svc.Login(context.Background(), models.LoginCredentials{Login: "a", Password: "b"})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), "tok"))
		assert.Equal(t, 1, api.logoutCalls)

		cached, err := svc.Store.Get(context.Background(), "tok")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("purges the cache even when the backend call fails", func(t *testing.T) {
		user := models.CurrentUser{ID: 5, Roles: []string{}}
		api := &fakeAPI{
			loginResult: &models.LoginResult{AccessToken: "tok", User: user},
			logoutErr:   errors.New("backend down"),
		}
		svc := newTestService(t, api)

		_, err := svc.Login(context.Background(), models.LoginCredentials{Login: "a", Password: "b"})
		require.NoError(t, err)

		assert.Error(t, svc.Logout(context.Background(), "tok"))
		cached, err := svc.Store.Get(context.Background(), "tok")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})
}

func TestStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	ctx := context.Background()

	user := models.CurrentUser{ID: 3, Login: "c@example.com", Roles: []string{models.AdminRole}}
	require.NoError(t, store.Save(ctx, "tok", user))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
	assert.True(t, got.IsAdmin())

	// The raw token must not appear anywhere in Redis.
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "tok")
	}

	require.NoError(t, store.Delete(ctx, "tok"))
	got, err = store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", models.CurrentUser{ID: 3}))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, got)
}
