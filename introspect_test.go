// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadArgon2ContextAndParamsWithoutPassphrase(t *testing.T) {
	params, err := NewParams(16, 2, 1)
	require.NoError(t, err)

	out, err := EncryptWithType([]byte("pass"), []byte("payload"), Argon2i, params)
	require.NoError(t, err)

	ctx, err := ReadArgon2Context(out)
	require.NoError(t, err)
	require.Equal(t, Argon2i, ctx.Argon2Type())
	require.Equal(t, Argon2Version0x13, ctx.Argon2Version())
	require.Equal(t, params, ctx.Params())

	readParams, err := ReadParams(out)
	require.NoError(t, err)
	require.Equal(t, params, readParams)
}

func TestReadParamsAcceptsParallelismAboveDerivationLimit(t *testing.T) {
	// A header naming a parallelism this build cannot derive under (see
	// TestArgon2DeriveRejectsParallelismAboveThreads) must still parse and
	// introspect cleanly: ReadParams never runs Argon2.
	params, err := NewParams(8*256, 1, 256)
	require.NoError(t, err)

	h, err := newHeader(Argon2id, Argon2Version0x13, params)
	require.NoError(t, err)
	headerBytes := h.asBytes()
	buf := make([]byte, MinCiphertextSize)
	copy(buf, headerBytes[:])

	readParams, err := ReadParams(buf)
	require.NoError(t, err)
	require.Equal(t, params, readParams)
}

func TestReadArgon2ContextPropagatesStructuralErrors(t *testing.T) {
	_, err := ReadArgon2Context(make([]byte, MinCiphertextSize-1))
	require.True(t, err != nil)

	out, err := EncryptWithParams([]byte("pass"), []byte("x"), lowCostParams(t))
	require.NoError(t, err)
	out[0] = 'z'

	_, err = ReadParams(out)
	require.Error(t, err)
}
