package auth

import "time"

// NewTestJWTService builds a JWT service with an injectable clock for
// tests that need to simulate token expiry. Not for production use: it
// skips the secret length check.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
