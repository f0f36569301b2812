package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/porterowner/internal/client/session"
)

// statusFailure is the body-level marker the backend uses to reject a login
// inside a transport-successful response.
const statusFailure = "failure"

// LoginResult is the interpreted outcome of a login call. Exactly one case
// holds: Authenticated carries the credential and profile that were written
// to the session store, otherwise Reason says why the backend rejected the
// attempt. Transport failures never produce a LoginResult; they surface as
// *RequestError.
type LoginResult struct {
	Authenticated bool
	Credential    string
	Profile       session.Profile
	Reason        string
}

// Login exchanges phone number and password for a session. The backend
// signals rejection inside a 200-status body, so the result must be
// inspected: a nil error does not mean the credentials were accepted.
// On acceptance the session store is updated before Login returns; on
// rejection the store is left exactly as it was.
func (g *Gateway) Login(ctx context.Context, phone string, password []byte) (*LoginResult, error) {
	form := url.Values{}
	form.Set("phoneNumber", phone)
	form.Set("password", string(password))

	env, err := g.request(ctx, http.MethodPost, pathLogin, requestOptions{form: form})
	if err != nil {
		return nil, err
	}

	// Historically the backend has signalled success three different ways
	// (a token, a bare owner id, a status field). The credential is the
	// token when present, else the owner id; no credential means rejection.
	cred := env.Token
	if cred == "" && env.OwnerID != 0 {
		cred = strconv.FormatInt(env.OwnerID, 10)
	}

	if env.Status == statusFailure || cred == "" {
		reason := env.Message
		if reason == "" {
			reason = "invalid phone number or password"
		}
		g.log.Info(ctx, "login rejected", "reason", reason)
		return &LoginResult{Reason: reason}, nil
	}

	profile := session.Profile{Name: env.Name, Phone: env.Phone, OwnerID: env.OwnerID}
	if err := g.session.Save(ctx, profile, cred); err != nil {
		return nil, err
	}

	g.log.Info(ctx, "login accepted", "owner_id", env.OwnerID)
	return &LoginResult{Authenticated: true, Credential: cred, Profile: profile}, nil
}

// IsNewAccount reports whether the phone number is not yet registered.
// Read-only; no session side effects.
func (g *Gateway) IsNewAccount(ctx context.Context, phone string) (bool, error) {
	q := url.Values{}
	q.Set("phoneNumber", phone)

	env, err := g.request(ctx, http.MethodGet, pathIsNew, requestOptions{query: q})
	if err != nil {
		return false, err
	}
	return env.IsNewUser, nil
}
