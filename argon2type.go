// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

// Argon2Type identifies which Argon2 variant produced (or should produce)
// the derived key, as stored in the header at offset 8.
type Argon2Type uint32

// The three Argon2 variants the wire format can name. Only Argon2i and
// Argon2id can actually be derived by this implementation; see
// Argon2UnsupportedVariant.
const (
	Argon2d  Argon2Type = 0
	Argon2i  Argon2Type = 1
	Argon2id Argon2Type = 2
)

// DefaultArgon2Type is Argon2id, per spec.
const DefaultArgon2Type = Argon2id

func (t Argon2Type) String() string {
	switch t {
	case Argon2d:
		return "Argon2d"
	case Argon2i:
		return "Argon2i"
	case Argon2id:
		return "Argon2id"
	default:
		return "Argon2Type(invalid)"
	}
}

func parseArgon2Type(v uint32) (Argon2Type, error) {
	switch Argon2Type(v) {
	case Argon2d, Argon2i, Argon2id:
		return Argon2Type(v), nil
	default:
		return 0, newValueError(InvalidArgon2Type, v)
	}
}

// Argon2Version identifies the Argon2 algorithm version, as stored in the
// header at offset 12.
type Argon2Version uint32

const (
	Argon2Version0x10 Argon2Version = 0x10
	Argon2Version0x13 Argon2Version = 0x13
)

// DefaultArgon2Version is 0x13, the latest Argon2 version.
const DefaultArgon2Version = Argon2Version0x13

func (v Argon2Version) String() string {
	switch v {
	case Argon2Version0x10:
		return "0x10"
	case Argon2Version0x13:
		return "0x13"
	default:
		return "Argon2Version(invalid)"
	}
}

func parseArgon2Version(v uint32) (Argon2Version, error) {
	switch Argon2Version(v) {
	case Argon2Version0x10, Argon2Version0x13:
		return Argon2Version(v), nil
	default:
		return 0, newValueError(InvalidArgon2Version, v)
	}
}

// formatVersion is the abcrypt container format version (distinct from
// Argon2Version). Only V1 is supported for decryption.
type formatVersion uint8

const (
	formatVersionV0 formatVersion = 0
	formatVersionV1 formatVersion = 1
)

func parseFormatVersion(v uint8) (formatVersion, error) {
	switch v {
	case 0:
		return formatVersionV0, nil
	case 1:
		return formatVersionV1, nil
	default:
		return 0, newValueError(UnknownVersion, uint32(v))
	}
}
