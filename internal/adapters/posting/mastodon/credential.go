package mastodon

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
)

var errMissingToken = errors.New("access token is empty")

type oauthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
}

// accessToken extracts the bearer token from a stored credential. OAuth
// token bundles are JSON as returned by the server's token endpoint.
func accessToken(method domain.AuthMethod, secret string, now time.Time) (string, error) {
	secret = strings.TrimSpace(secret)

	switch method {
	case domain.AuthMethodOAuthTokens:
		tokens, err := decodeOAuthTokens(secret)
		if err != nil {
			return "", err
		}
		if tokens.ExpiresAt > 0 && !time.Unix(tokens.ExpiresAt, 0).After(now) {
			return "", fmt.Errorf("oauth access token expired at %s", time.Unix(tokens.ExpiresAt, 0).UTC().Format(time.RFC3339))
		}
		return tokens.AccessToken, nil
	case domain.AuthMethodAccessToken, "":
		if strings.HasPrefix(secret, "{") {
			tokens, err := decodeOAuthTokens(secret)
			if err != nil {
				return "", err
			}
			return tokens.AccessToken, nil
		}
		if secret == "" {
			return "", errMissingToken
		}
		return secret, nil
	default:
		return "", fmt.Errorf("unsupported auth method %q", method)
	}
}

func decodeOAuthTokens(secret string) (oauthTokens, error) {
	var tokens oauthTokens
	if err := json.Unmarshal([]byte(secret), &tokens); err != nil {
		return oauthTokens{}, fmt.Errorf("decode oauth tokens: %w", err)
	}
	if strings.TrimSpace(tokens.AccessToken) == "" {
		return oauthTokens{}, errors.New("oauth tokens missing access_token")
	}
	return tokens, nil
}
