package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// AuthRateLimitPolicy throttles one unauthenticated surface, login or
// register, with fixed-window Redis counters. Two dimensions run in
// order: the client IP, then the submitted email. Emails are hashed
// before they become Redis keys.
type AuthRateLimitPolicy struct {
	name       string
	window     time.Duration
	ipLimit    int
	emailLimit int
}

// NewAuthRateLimitPolicy builds a policy. A zero limit disables that
// dimension; a zero window disables the policy entirely.
func NewAuthRateLimitPolicy(name string, window time.Duration, ipLimit, emailLimit int) AuthRateLimitPolicy {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "auth"
	}
	return AuthRateLimitPolicy{
		name:       name,
		window:     window,
		ipLimit:    ipLimit,
		emailLimit: emailLimit,
	}
}

func (p AuthRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

// counter is one dimension of a policy resolved against a request.
type counter struct {
	scope string
	key   string
	limit int64
}

// counters resolves the policy's dimensions for this request. When
// the email dimension is active the body is consumed; the returned
// bytes must be put back on the request before the next handler runs.
func (p AuthRateLimitPolicy) counters(r *http.Request) ([]counter, []byte, error) {
	out := make([]counter, 0, 2)

	if p.ipLimit > 0 {
		if ip := clientIP(r); ip != "" {
			out = append(out, counter{
				scope: "ip",
				key:   fmt.Sprintf("authrl:%s:ip:%s", p.name, ip),
				limit: int64(p.ipLimit),
			})
		}
	}

	var body []byte
	if p.emailLimit > 0 {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, nil, err
		}
		if email := submittedEmail(body); email != "" {
			out = append(out, counter{
				scope: "email",
				key:   fmt.Sprintf("authrl:%s:email:%s", p.name, hashValue(email)),
				limit: int64(p.emailLimit),
			})
		}
	}

	return out, body, nil
}

// AuthRateLimit blocks requests once any of the policy's counters
// exceeds its limit inside the window.
func AuthRateLimit(policy AuthRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dims, body, err := policy.counters(r)
			if err != nil {
				responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			if body != nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			for _, dim := range dims {
				count, err := store.IncrWithTTL(ctx, dim.key, policy.window)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > dim.limit {
					if logg != nil {
						logCtx := logg.WithFields(ctx, map[string]any{
							"policy":         policy.name,
							"scope":          dim.scope,
							"attempts":       count,
							"limit":          dim.limit,
							"window_seconds": int(policy.window.Seconds()),
						})
						logg.Warn(logCtx, "auth.rate_limit.blocked")
					}
					responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers proxy headers because the API runs behind one in
// every non-dev environment.
func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func submittedEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(body.Email))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
