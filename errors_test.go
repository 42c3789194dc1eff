// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		InvalidLength:         "InvalidLength",
		InvalidMagicNumber:    "InvalidMagicNumber",
		UnsupportedVersion:    "UnsupportedVersion",
		UnknownVersion:        "UnknownVersion",
		InvalidArgon2Type:     "InvalidArgon2Type",
		InvalidArgon2Version:  "InvalidArgon2Version",
		InvalidArgon2Params:   "InvalidArgon2Params",
		InvalidArgon2Context:  "InvalidArgon2Context",
		InvalidHeaderMAC:      "InvalidHeaderMAC",
		InvalidMAC:            "InvalidMAC",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
}

func TestErrorIsStructural(t *testing.T) {
	a := newValueError(UnsupportedVersion, 0)
	b := newValueError(UnsupportedVersion, 0)
	c := newValueError(UnsupportedVersion, 2)

	require.True(t, errors.Is(a, b))
	require.False(t, errors.Is(a, c))
	require.False(t, errors.Is(a, ErrInvalidMagicNumber))
}

func TestErrorSentinelsMatchSelf(t *testing.T) {
	require.True(t, errors.Is(ErrInvalidLength, ErrInvalidLength))
	require.True(t, errors.Is(ErrInvalidHeaderMAC, ErrInvalidHeaderMAC))
	require.False(t, errors.Is(ErrInvalidHeaderMAC, ErrInvalidMAC))
}

func TestErrorUnwrapsSubError(t *testing.T) {
	err := newError(InvalidArgon2Params, errMemoryTooLittle)
	require.True(t, errors.Is(err, ErrInvalidArgon2Params))

	var sub *Argon2SubError
	require.True(t, errors.As(err, &sub))
	require.Equal(t, Argon2MemoryTooLittle, sub.Kind())
}

func TestErrorIsDistinguishesSubCause(t *testing.T) {
	memTooLittle := newError(InvalidArgon2Params, errMemoryTooLittle)
	timeCostZero := newError(InvalidArgon2Params, errTimeCostZero)

	require.True(t, errors.Is(memTooLittle, memTooLittle))
	require.False(t, errors.Is(memTooLittle, timeCostZero))

	// The sentinel (no wrapped sub-cause) still matches either.
	require.True(t, errors.Is(memTooLittle, ErrInvalidArgon2Params))
	require.True(t, errors.Is(timeCostZero, ErrInvalidArgon2Params))
}

func TestArgon2SubErrorIs(t *testing.T) {
	require.True(t, errors.Is(errTimeCostZero, errTimeCostZero))
	require.False(t, errors.Is(errTimeCostZero, errMemoryTooLittle))
}

func TestErrorMessages(t *testing.T) {
	require.Contains(t, ErrInvalidLength.Error(), "shorter than")
	require.Contains(t, newValueError(UnsupportedVersion, 0).Error(), "unsupported version")
	require.Contains(t, newValueError(UnknownVersion, 7).Error(), "unknown version")
	require.Contains(t, newValueError(InvalidArgon2Type, 9).Error(), "invalid Argon2 type")
	require.Contains(t, newError(InvalidArgon2Context, errUnsupportedArgon2Variant).Error(), "invalid Argon2 context")
}
