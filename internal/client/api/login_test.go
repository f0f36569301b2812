package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/porterowner/internal/client/session"
	"github.com/dmitrijs2005/porterowner/internal/common"
)

func TestLogin_Accepted_WritesSession(t *testing.T) {
	store := session.NewStatic(7)
	var gotMethod, gotContentType, gotPhone, gotPassword string
	g := newTestGateway(t, store, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotPhone = r.PostForm.Get("phoneNumber")
		gotPassword = r.PostForm.Get("password")
		_, _ = w.Write([]byte(`{"status":"success","oaId":42,"name":"A","phoneNumber":"9876543210"}`))
	})

	res, err := g.Login(context.Background(), "9876543210", []byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "9876543210", gotPhone)
	assert.Equal(t, "secret", gotPassword)

	require.True(t, res.Authenticated)
	assert.Equal(t, "42", res.Credential)
	assert.Equal(t, int64(42), res.Profile.OwnerID)
	assert.Equal(t, "A", res.Profile.Name)

	cred, err := store.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", cred)
}

func TestLogin_PrefersTokenOverOwnerID(t *testing.T) {
	store := session.NewStatic(7)
	g := newTestGateway(t, store, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-1","oaId":42,"name":"A"}`))
	})

	res, err := g.Login(context.Background(), "9876543210", []byte("secret"))
	require.NoError(t, err)
	require.True(t, res.Authenticated)
	assert.Equal(t, "tok-1", res.Credential)

	cred, err := store.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cred)
}

func TestLogin_Rejected_LeavesStoreUntouched(t *testing.T) {
	// pre-existing session must survive a rejected login attempt
	store := activeStore(t, 13, "13")
	g := newTestGateway(t, store, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failure","message":"bad password"}`))
	})

	res, err := g.Login(context.Background(), "9876543210", []byte("wrong"))
	require.NoError(t, err, "rejection is a result, not an error")

	assert.False(t, res.Authenticated)
	assert.Equal(t, "bad password", res.Reason)

	cred, err := store.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "13", cred)
}

func TestLogin_Rejected_EmptyBody(t *testing.T) {
	store := session.NewStatic(7)
	g := newTestGateway(t, store, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	res, err := g.Login(context.Background(), "9876543210", []byte("secret"))
	require.NoError(t, err)

	assert.False(t, res.Authenticated)
	assert.NotEmpty(t, res.Reason)

	_, err = store.Current(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestLogin_TransportFailureIsRequestError(t *testing.T) {
	store := session.NewStatic(7)
	g := newTestGateway(t, store, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	_, err := g.Login(context.Background(), "9876543210", []byte("secret"))
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)

	_, err = store.Current(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestIsNewAccount(t *testing.T) {
	var gotPhone string
	g := newTestGateway(t, session.NewStatic(7), func(w http.ResponseWriter, r *http.Request) {
		gotPhone = r.URL.Query().Get("phoneNumber")
		_, _ = w.Write([]byte(`{"isNewUser":true}`))
	})

	isNew, err := g.IsNewAccount(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "9876543210", gotPhone)
}
