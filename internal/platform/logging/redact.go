package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// jwtPattern matches a bare JSON Web Token.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	// authHeaderPattern matches Bearer and Basic credentials.
	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)

	// urlUserinfoPattern matches URLs carrying user:password@.
	urlUserinfoPattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://[^/?#@\s]+:[^/?#@\s]*@`)

	// urlSecretParamPattern matches URLs with a credential in the query,
	// as found in shared links to private documents and signed downloads.
	urlSecretParamPattern = regexp.MustCompile(
		`(?i)[?&](access_token|id_token|token|api_?key|key|sig|signature|x-amz-signature|auth|code|password|secret)=[^&#]+`,
	)
)

// DefaultRedactOptions returns the masq options applied to every logger.
// Shared URLs are logged as final_url, so URL values holding credentials
// are redacted whole.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("refresh_token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("session"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(authHeaderPattern),
		masq.WithRegex(urlUserinfoPattern),
		masq.WithRegex(urlSecretParamPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr that applies DefaultRedactOptions
// followed by opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
