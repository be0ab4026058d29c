// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. Plaintext never leaves the call.
//
// Encoded hashes use the PHC string format:
//
//	$argon2id$v=19$m=<memory KiB>,t=<time>,p=<threads>$<salt b64>$<hash b64>
//
// so the parameters travel with the hash and can be raised later without
// invalidating stored passwords.
type PasswordHasher interface {
	// Hash derives a new encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A mismatch is
	// (false, nil); a malformed encoded value is an error.
	Verify(password, encoded string) (bool, error)
}
