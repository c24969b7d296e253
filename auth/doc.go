// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin panel.

# Admin Password

A single shared password protects every mutation:

	err := auth.CheckPassword(attempt, cfg.AdminPassword, cfg.AdminPasswordHash)

When a bcrypt hash is configured it is the only accepted credential.
Otherwise the plaintext password is compared in constant time. Generate a
hash with:

	hash, err := auth.HashPassword("s3cret")

# Session Tokens

A successful login returns an HS256 JWT:

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	token, expiresAt, err := tokens.Issue(auth.AdminSubject)
	subject, err := tokens.Parse(token)

Tokens carry a random jti, the "formula-zero" issuer and an expiry. Parse
rejects other signing methods, other issuers, and expired tokens with
ErrInvalidToken.

# ID Generation

Random hex strings, used for generated JWT secrets:

	id, err := auth.GenerateID(32)  // 64 hex characters
*/
package auth
