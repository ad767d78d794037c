// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package auth provides token and password utilities.

# Bearer Tokens

Tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateToken()

Clients send them in the Authorization header:

	Authorization: Token <value>

ParseTokenHeader extracts the value. Only the HMAC-SHA256 of a token
(HashToken, keyed by the configured salt) is persisted, so validation
is a lookup of the recomputed hash.

# Passwords

Passwords are hashed with bcrypt:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, candidate)

CheckPassword returns ErrWrongPassword on mismatch.
*/
package auth
