// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

// randRead is a seam over the OS CSPRNG (crypto/rand.Read) so tests can
// inject a deterministic source instead of patching a global singleton.
var randRead = rand.Read

func randomFill(buf []byte) error {
	_, err := randRead(buf)
	return err
}

// maxThreads is the largest parallelism golang.org/x/crypto/argon2 can
// derive under: Key and IDKey both take threads as a uint8, narrower than
// Params' own [1, 2^24-1] wire range.
const maxThreads = 255

// argon2Derive runs Argon2 under (typ, ver, params) over (passphrase, salt)
// and fills out, which must have length DerivedKeySize. golang.org/x/crypto/argon2
// exposes only Argon2i (Key) and Argon2id (IDKey), always at version 0x13;
// Argon2d, version 0x10, and parallelism above maxThreads are valid wire
// values this package can parse and round-trip, but cannot actually derive,
// so they report a dedicated InvalidArgon2Context sub-cause instead of
// silently running the wrong algorithm.
func argon2Derive(typ Argon2Type, ver Argon2Version, params Params, passphrase, salt, out []byte) error {
	if ver != Argon2Version0x13 {
		return newError(InvalidArgon2Context, errUnsupportedArgon2Version)
	}
	if params.parallelism > maxThreads {
		return newError(InvalidArgon2Context, errUnsupportedParallelism)
	}

	keyLen := uint32(len(out))
	threads := uint8(params.parallelism)

	switch typ {
	case Argon2i:
		copy(out, argon2.Key(passphrase, salt, params.timeCost, params.memoryCost, threads, keyLen))
		return nil
	case Argon2id:
		copy(out, argon2.IDKey(passphrase, salt, params.timeCost, params.memoryCost, threads, keyLen))
		return nil
	case Argon2d:
		return newError(InvalidArgon2Context, errUnsupportedArgon2Variant)
	default:
		return newValueError(InvalidArgon2Type, uint32(typ))
	}
}

// aeadSeal encrypts plaintext in place (detached tag) using
// XChaCha20-Poly1305 with an empty AAD, appending nothing: the caller
// supplies buf sized exactly len(plaintext) and receives the 16-byte tag
// back separately.
func aeadSeal(key *[chacha20poly1305.KeySize]byte, nonce []byte, buf []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, err
	}
	sealed := aead.Seal(buf[:0], nonce, append([]byte(nil), buf...), nil)
	tag := append([]byte(nil), sealed[len(buf):]...)
	copy(buf, sealed[:len(buf)])
	return tag, nil
}

// aeadOpen decrypts buf in place using XChaCha20-Poly1305 with an empty
// AAD, verifying the detached tag.
func aeadOpen(key *[chacha20poly1305.KeySize]byte, nonce []byte, buf []byte, tag []byte) error {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return err
	}
	ciphertext := append(append([]byte(nil), buf...), tag...)
	plaintext, err := aead.Open(buf[:0], nonce, ciphertext, nil)
	if err != nil {
		return ErrInvalidMAC
	}
	copy(buf, plaintext)
	return nil
}

// blake2bMAC computes BLAKE2b-512-MAC(key, data).
func blake2bMAC(key, data []byte) ([]byte, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// blake2bVerify recomputes BLAKE2b-512-MAC(key, data) and compares it to
// tag in constant time, per invariant I7.
func blake2bVerify(key, data, tag []byte) error {
	computed, err := blake2bMAC(key, data)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(computed, tag) != 1 {
		return ErrInvalidHeaderMAC
	}
	return nil
}
