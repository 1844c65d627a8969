package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/7", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetUser(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"id":7,"name":"Ana","role":"admin","blocked":true}`)
		c := NewClient(srv.URL+"/", time.Second, logger.Nop())

		user, err := c.GetUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.True(t, user.Blocked)
		assert.True(t, user.IsAdmin())
	})

	t.Run("not found", func(t *testing.T) {
		srv := newServer(t, http.StatusNotFound, `{}`)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).GetUser(context.Background(), 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		srv := newServer(t, http.StatusInternalServerError, `boom`)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).GetUser(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("bad body", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{`)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).GetUser(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetUserWithGracefulDegradation(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, 200*time.Millisecond, logger.Nop()).GetUserWithGracefulDegradation(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})

	t.Run("not found passes through", func(t *testing.T) {
		srv := newServer(t, http.StatusNotFound, `{}`)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).GetUserWithGracefulDegradation(context.Background(), 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NotErrorIs(t, err, ErrServiceDegraded)
	})
}
