package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Success(t *testing.T) {
	var gotSecret, gotResponse string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.FormValue("secret")
		gotResponse = r.FormValue("response")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret", time.Second)
	err := c.Verify(context.Background(), "user-token")

	require.NoError(t, err)
	assert.Equal(t, "s3cret", gotSecret)
	assert.Equal(t, "user-token", gotResponse)
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret", time.Second)
	err := c.Verify(context.Background(), "bot-token")

	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestVerify_EndpointDown_RetriesThenDependencyError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret", time.Second)
	err := c.Verify(context.Background(), "token")

	assert.True(t, errors.Is(err, common.ErrorDependency), "got %v", err)
	assert.Equal(t, 3, calls, "expected initial call plus two retries")
}

func TestVerify_RecoversAfterTransientFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret", time.Second)
	require.NoError(t, c.Verify(context.Background(), "token"))
	assert.Equal(t, 2, calls)
}

func TestVerify_DisabledWithoutSecret(t *testing.T) {
	c := NewClient("http://captcha.invalid", "", time.Second)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.Verify(context.Background(), "anything"))
}
