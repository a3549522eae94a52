package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Caller issues JSON requests against one downstream service. All callers
// share a single pooled http.Client created at process start, so connections
// are reused across requests instead of being re-dialed per call. The caller
// performs no retries; retry policy belongs to whoever orchestrates the call.
type Caller struct {
	name string
	base string
	http *http.Client
	log  *zap.Logger
}

// NewCaller builds a caller for the named service rooted at base.
func NewCaller(name, base string, httpc *http.Client, log *zap.Logger) *Caller {
	return &Caller{name: name, base: strings.TrimRight(base, "/"), http: httpc, log: log}
}

// do issues one request. user, when non-empty, is forwarded as the identity
// header. in, when non-nil, is sent as a JSON body; out, when non-nil,
// receives the decoded response body of any sub-400 answer. Failures are
// logged here, one structured line per category; successes are not logged.
func (c *Caller) do(ctx context.Context, method, path, user string, query url.Values, in, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request body: %w", c.name, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", c.name, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(model.IdentityHeader, user)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("downstream request failed",
			zap.String("service", c.name),
			zap.String("operation", method+" "+path),
			zap.Error(err))
		return fmt.Errorf("%s %s %s: %w", c.name, method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Error("downstream request rejected",
			zap.String("service", c.name),
			zap.String("operation", method+" "+path),
			zap.Int("status", resp.StatusCode))
		return &UpstreamError{Service: c.name, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("downstream response undecodable",
			zap.String("service", c.name),
			zap.String("operation", method+" "+path),
			zap.Error(err))
		return fmt.Errorf("%s %s %s: %w", c.name, method, path, ErrDecode)
	}
	return nil
}
