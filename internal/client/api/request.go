package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/porterowner/internal/common"
)

// envelope is the shared response shape: every endpoint wraps its payload
// in a data field, and login/isNew responses carry their fields at the top
// level. A missing data field means an empty result, not an error.
type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	TotalCount int64           `json:"total_count"`
	Token      string          `json:"token"`
	OwnerID    int64           `json:"oaId"`
	Name       string          `json:"name"`
	Phone      string          `json:"phoneNumber"`
	IsNewUser  bool            `json:"isNewUser"`
	Data       json.RawMessage `json:"data"`
}

type requestOptions struct {
	query  url.Values
	form   url.Values
	header http.Header
}

// request is the shared primitive every gateway operation goes through.
// It resolves the full URL, tags the request, attaches the session
// credential when one is active (caller headers cannot override it),
// executes the call and decodes the envelope. Any non-2xx status, network
// failure or undecodable body comes back as *RequestError. Timeouts and
// cancellation are the caller's business, via ctx.
func (g *Gateway) request(ctx context.Context, method, path string, opts requestOptions) (*envelope, error) {
	u := g.baseURL + path
	if len(opts.query) > 0 {
		u += "?" + opts.query.Encode()
	}

	var body io.Reader
	if opts.form != nil {
		body = strings.NewReader(opts.form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if opts.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, vs := range opts.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if cred, err := g.session.Current(ctx); err == nil {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+cred)
	}

	g.log.Debug(ctx, "backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error(ctx, "backend unreachable", "path", path, "request_id", requestID, "error", err)
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		g.log.Warn(ctx, "backend error status", "path", path, "request_id", requestID, "status", resp.Status)
		return nil, &RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	return &env, nil
}

// decodeData unmarshals the envelope's data field into T. Absent or null
// data yields the zero value.
func decodeData[T any](env *envelope) (T, error) {
	var out T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &RequestError{Err: err}
	}
	return out, nil
}
