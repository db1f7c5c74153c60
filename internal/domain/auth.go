package domain

type AuthMethod string

const (
	AuthMethodAccessToken AuthMethod = "access_token"
	AuthMethodOAuthTokens AuthMethod = "oauth_tokens"
)

type Auth struct {
	Method AuthMethod
	// SecretRef points to a secret-store entry, typically in "xthreads/<account>/<name>" form.
	SecretRef string
}

func (a Auth) Configured() bool {
	return a.Method != "" && a.SecretRef != ""
}
