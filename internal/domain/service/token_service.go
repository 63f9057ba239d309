package service

// TokenIssuer is the fixed issuer claim of every bearer token.
const TokenIssuer = "auth-service"

// TokenService issues and verifies signed bearer tokens carrying a username.
type TokenService interface {
	// Issue signs a token for subject. An error means the signer is misconfigured.
	Issue(subject string) (string, error)

	// Verify returns the token's subject, or "" when the token is not acceptable
	// for any reason (signature, issuer, expiry, algorithm).
	Verify(token string) string
}
