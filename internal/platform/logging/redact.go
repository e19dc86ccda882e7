package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// credentialURL matches URLs carrying user:password, e.g. a private seed endpoint.
	credentialURL = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`)
	bearerValue   = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`)
)

// DefaultRedactOptions masks user passwords wherever they surface (attribute
// keys or struct fields such as domain.User.Password), credentials embedded in
// seed URLs, and forwarded auth headers.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("token"),

		masq.WithRegex(credentialURL),
		masq.WithRegex(bearerValue),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts sensitive values.
// Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
