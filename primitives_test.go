// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
)

func TestArgon2DeriveRejectsArgon2d(t *testing.T) {
	params, err := NewParams(8, 1, 1)
	require.NoError(t, err)

	out := make([]byte, DerivedKeySize)
	err = argon2Derive(Argon2d, Argon2Version0x13, params, []byte("pass"), make([]byte, SaltSize), out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidArgon2Context))

	var sub *Argon2SubError
	require.True(t, errors.As(err, &sub))
	require.Equal(t, Argon2UnsupportedVariant, sub.Kind())
}

func TestArgon2DeriveRejectsVersion0x10(t *testing.T) {
	params, err := NewParams(8, 1, 1)
	require.NoError(t, err)

	out := make([]byte, DerivedKeySize)
	err = argon2Derive(Argon2id, Argon2Version0x10, params, []byte("pass"), make([]byte, SaltSize), out)
	require.Error(t, err)

	var sub *Argon2SubError
	require.True(t, errors.As(err, &sub))
	require.Equal(t, Argon2UnsupportedAlgorithmVersion, sub.Kind())
}

func TestArgon2DeriveRejectsParallelismAboveThreads(t *testing.T) {
	params, err := NewParams(8*256, 1, 256)
	require.NoError(t, err)

	out := make([]byte, DerivedKeySize)
	err = argon2Derive(Argon2id, Argon2Version0x13, params, []byte("pass"), make([]byte, SaltSize), out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidArgon2Context))

	var sub *Argon2SubError
	require.True(t, errors.As(err, &sub))
	require.Equal(t, Argon2UnsupportedParallelism, sub.Kind())
}

func TestArgon2DeriveIsDeterministic(t *testing.T) {
	params, err := NewParams(8, 1, 1)
	require.NoError(t, err)

	salt := bytes.Repeat([]byte{0x42}, SaltSize)
	out1 := make([]byte, DerivedKeySize)
	out2 := make([]byte, DerivedKeySize)

	require.NoError(t, argon2Derive(Argon2id, Argon2Version0x13, params, []byte("pass"), salt, out1))
	require.NoError(t, argon2Derive(Argon2id, Argon2Version0x13, params, []byte("pass"), salt, out2))
	require.Equal(t, out1, out2)

	out3 := make([]byte, DerivedKeySize)
	require.NoError(t, argon2Derive(Argon2i, Argon2Version0x13, params, []byte("pass"), salt, out3))
	require.NotEqual(t, out1, out3)
}

func TestAeadSealOpenRoundTrip(t *testing.T) {
	var key [chacha20poly1305.KeySize]byte
	require.NoError(t, randomFill(key[:]))
	nonce := make([]byte, NonceSize)
	require.NoError(t, randomFill(nonce))

	plaintext := []byte("Gophers, gophers, gophers everywhere!")
	buf := append([]byte(nil), plaintext...)

	tag, err := aeadSeal(&key, nonce, buf)
	require.NoError(t, err)
	require.Len(t, tag, TagSize)
	require.NotEqual(t, plaintext, buf)

	require.NoError(t, aeadOpen(&key, nonce, buf, tag))
	require.Equal(t, plaintext, buf)
}

func TestAeadOpenRejectsTamperedTag(t *testing.T) {
	var key [chacha20poly1305.KeySize]byte
	require.NoError(t, randomFill(key[:]))
	nonce := make([]byte, NonceSize)
	require.NoError(t, randomFill(nonce))

	buf := []byte("secret message")
	tag, err := aeadSeal(&key, nonce, buf)
	require.NoError(t, err)

	tag[0] ^= 0x01
	err = aeadOpen(&key, nonce, buf, tag)
	require.True(t, errors.Is(err, ErrInvalidMAC))
}

func TestBlake2bMACVerify(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, MacSize)
	data := []byte("header bytes go here")

	mac, err := blake2bMAC(key, data)
	require.NoError(t, err)
	require.Len(t, mac, MacSize)

	require.NoError(t, blake2bVerify(key, data, mac))

	badMac := append([]byte(nil), mac...)
	badMac[0] ^= 0x01
	err = blake2bVerify(key, data, badMac)
	require.True(t, errors.Is(err, ErrInvalidHeaderMAC))
}
