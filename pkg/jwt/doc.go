// Package jwt implements minimal HS256 JSON Web Tokens for carrying the
// caller identity between services.
//
// The Service signs and verifies compact tokens with a shared secret;
// Claims covers the registered claims this module needs, with the subject
// holding the user identifier. No third-party dependency is required —
// HS256 over stdlib crypto is sufficient for a single-issuer setup.
//
//	svc, err := jwt.NewFromString("super-secret-signing-key")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Generate(jwt.Claims{
//	    Subject:   userID,
//	    ExpiresAt: time.Now().Add(time.Hour).Unix(),
//	})
//
//	claims, err := svc.Parse(token)
//	// claims.Subject == userID
//
// BearerToken extracts the raw token from an Authorization header value.
package jwt
