// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

// Argon2Context reports the Argon2 type, version and parameters recorded
// in a container's header, without deriving a key or verifying any MAC.
// Useful for tools that display file metadata without holding the
// passphrase.
type Argon2Context struct {
	argon2Type    Argon2Type
	argon2Version Argon2Version
	params        Params
}

// Argon2Type returns the Argon2 variant recorded in the header.
func (c Argon2Context) Argon2Type() Argon2Type { return c.argon2Type }

// Argon2Version returns the Argon2 algorithm version recorded in the header.
func (c Argon2Context) Argon2Version() Argon2Version { return c.argon2Version }

// Params returns the Argon2 parameters recorded in the header.
func (c Argon2Context) Params() Params { return c.params }

// ReadArgon2Context parses ciphertext's header only (no key derivation, no
// MAC check) and reports its Argon2 context. Returns the same structural
// errors as NewDecryptor's header-parsing step.
func ReadArgon2Context(ciphertext []byte) (Argon2Context, error) {
	h, err := parseHeader(ciphertext)
	if err != nil {
		return Argon2Context{}, err
	}
	return Argon2Context{
		argon2Type:    h.argon2Type,
		argon2Version: h.argon2Version,
		params:        h.params,
	}, nil
}

// ReadParams parses ciphertext's header only and reports its Argon2
// parameters.
func ReadParams(ciphertext []byte) (Params, error) {
	h, err := parseHeader(ciphertext)
	if err != nil {
		return Params{}, err
	}
	return h.params, nil
}
