// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import "golang.org/x/crypto/chacha20poly1305"

// Profile selects how large an Argon2 memory cost a caller is willing to
// run under. The Rust implementation this package's format derives from
// offers a #![no_std] build that derives keys out of a static, compile-time
// memory pool instead of the heap; Go has no equivalent allocation-free
// path; ProfileEmbedded instead bounds memoryCost to embeddedMemoryCostLimit
// KiB so callers targeting constrained devices get the same practical
// ceiling without this package claiming a no-heap guarantee it can't keep.
type Profile int

const (
	// ProfileDefault imposes no additional bound beyond Params itself.
	ProfileDefault Profile = iota

	// ProfileEmbedded rejects memoryCost above embeddedMemoryCostLimit KiB.
	ProfileEmbedded
)

// embeddedMemoryCostLimit mirrors the block pool size of the Rust crate's
// no_std build (1024 KiB).
const embeddedMemoryCostLimit = 1024

func checkProfile(profile Profile, params Params) error {
	if profile == ProfileEmbedded && params.memoryCost > embeddedMemoryCostLimit {
		return newError(InvalidArgon2Context, errMemoryBudgetExceeded)
	}
	return nil
}

// derivedKey is the Argon2 output split into an AEAD key and a MAC key,
// per invariant I4.
type derivedKey struct {
	enc [chacha20poly1305.KeySize]byte
	mac [MacSize]byte
}

// deriveKey runs the key schedule: validate the profile budget, derive
// DerivedKeySize bytes via Argon2, then split them into the AEAD key
// (bytes [0:32)) and the MAC key (bytes [32:96)).
func deriveKey(typ Argon2Type, ver Argon2Version, params Params, profile Profile, passphrase, salt []byte) (*derivedKey, error) {
	if err := checkProfile(profile, params); err != nil {
		return nil, err
	}

	var buf [DerivedKeySize]byte
	if err := argon2Derive(typ, ver, params, passphrase, salt, buf[:]); err != nil {
		return nil, err
	}

	dk := &derivedKey{}
	copy(dk.enc[:], buf[:chacha20poly1305.KeySize])
	copy(dk.mac[:], buf[chacha20poly1305.KeySize:])
	return dk, nil
}
