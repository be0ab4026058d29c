// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	keyLength  = 32 // 256 bits

	variantArgon2id = "argon2id"
)

// Params are the Argon2id tuning parameters used for new hashes.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams are the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// argon2idHasher is the private implementation of [PasswordHasher].
type argon2idHasher struct {
	params Params
	rand   io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] using Argon2id with
// params. Zero fields fall back to [DefaultParams].
func NewPasswordHasher(params Params) PasswordHasher {
	if params.Time == 0 {
		params.Time = DefaultParams.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultParams.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultParams.Threads
	}

	return &argon2idHasher{
		params: params,
		rand:   rand.Reader,
	}
}

// Hash implements [PasswordHasher].
func (h *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		variantArgon2id,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The candidate is derived with the
// parameters stored in encoded, then compared in constant time.
func (h *argon2idHasher) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	var params Params

	// "", variant, version, params, salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, ErrInvalidHashFormat
	}

	if parts[1] != variantArgon2id {
		return params, nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}
	if version != argon2.Version {
		return params, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}
	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 {
		return params, nil, nil, ErrInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidHashFormat
	}

	return params, salt, key, nil
}
