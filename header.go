// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import "encoding/binary"

// Wire-format constants, per spec §6.
const (
	// HeaderSize is the number of bytes of the abcrypt v1 header.
	HeaderSize = 148

	// TagSize is the number of bytes of the AEAD authentication tag.
	TagSize = 16

	// SaltSize is the number of bytes of the Argon2 salt.
	SaltSize = 32

	// NonceSize is the number of bytes of the XChaCha20-Poly1305 nonce.
	NonceSize = 24

	// MacSize is the number of bytes of the BLAKE2b-512 header MAC.
	MacSize = 64

	// DerivedKeySize is the number of bytes Argon2 produces, before being
	// split into a 32-byte AEAD key and a 64-byte MAC key.
	DerivedKeySize = 96

	// MinCiphertextSize is the smallest input parseHeader (and therefore
	// NewDecryptor) will accept.
	MinCiphertextSize = HeaderSize + TagSize

	aeadKeyEnd = 32 // offset within a DerivedKeySize buffer where the MAC key begins
)

var magicNumber = [7]byte{'a', 'b', 'c', 'r', 'y', 'p', 't'}

const (
	offVersion       = 7
	offArgon2Type    = 8
	offArgon2Version = 12
	offMemoryCost    = 16
	offTimeCost      = 20
	offParallelism   = 24
	offSalt          = 28
	offNonce         = 60
	offMac           = 84
)

// header is the parsed (or freshly constructed) abcrypt v1 header.
type header struct {
	version       formatVersion
	argon2Type    Argon2Type
	argon2Version Argon2Version
	params        Params
	salt          [SaltSize]byte
	nonce         [NonceSize]byte
	mac           [MacSize]byte
}

// newHeader builds a header for a fresh encryption: a random salt and
// nonce, version fixed at V1, and a zeroed MAC (filled in later by
// computeMAC once the key schedule has run).
func newHeader(typ Argon2Type, ver Argon2Version, params Params) (*header, error) {
	h := &header{
		version:       formatVersionV1,
		argon2Type:    typ,
		argon2Version: ver,
		params:        params,
	}
	if err := randomFill(h.salt[:]); err != nil {
		return nil, err
	}
	if err := randomFill(h.nonce[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// parseHeader parses and validates everything in data[0:HeaderSize) except
// the header MAC itself, which verifyMAC checks once the key schedule has
// derived the MAC key. Magic number is checked before the version, which
// is checked before Argon2 type/version/params, so that a caller pointed
// at the wrong format sees the most specific error (spec §4.C).
func parseHeader(data []byte) (*header, error) {
	if len(data) < MinCiphertextSize {
		return nil, ErrInvalidLength
	}
	if [7]byte(data[0:7]) != magicNumber {
		return nil, ErrInvalidMagicNumber
	}

	version, err := parseFormatVersion(data[offVersion])
	if err != nil {
		return nil, err
	}
	if version != formatVersionV1 {
		return nil, newValueError(UnsupportedVersion, uint32(data[offVersion]))
	}

	argon2Type, err := parseArgon2Type(binary.LittleEndian.Uint32(data[offArgon2Type : offArgon2Type+4]))
	if err != nil {
		return nil, err
	}
	argon2Version, err := parseArgon2Version(binary.LittleEndian.Uint32(data[offArgon2Version : offArgon2Version+4]))
	if err != nil {
		return nil, err
	}
	params, err := DecodeParams(data[offMemoryCost : offMemoryCost+ParamsSize])
	if err != nil {
		return nil, err
	}

	h := &header{
		version:       version,
		argon2Type:    argon2Type,
		argon2Version: argon2Version,
		params:        params,
	}
	copy(h.salt[:], data[offSalt:offSalt+SaltSize])
	copy(h.nonce[:], data[offNonce:offNonce+NonceSize])
	copy(h.mac[:], data[offMac:offMac+MacSize])
	return h, nil
}

// asBytes serializes the header, including whatever MAC is currently set.
func (h *header) asBytes() [HeaderSize]byte {
	var out [HeaderSize]byte
	copy(out[0:7], magicNumber[:])
	out[offVersion] = byte(h.version)
	binary.LittleEndian.PutUint32(out[offArgon2Type:offArgon2Type+4], uint32(h.argon2Type))
	binary.LittleEndian.PutUint32(out[offArgon2Version:offArgon2Version+4], uint32(h.argon2Version))
	h.params.Encode(out[offMemoryCost : offMemoryCost+ParamsSize])
	copy(out[offSalt:offSalt+SaltSize], h.salt[:])
	copy(out[offNonce:offNonce+NonceSize], h.nonce[:])
	copy(out[offMac:offMac+MacSize], h.mac[:])
	return out
}

// computeMAC sets h.mac to BLAKE2b-512-MAC(macKey, bytes[0:84)).
func (h *header) computeMAC(macKey []byte) error {
	bytes := h.asBytes()
	mac, err := blake2bMAC(macKey, bytes[:offMac])
	if err != nil {
		return err
	}
	copy(h.mac[:], mac)
	return nil
}

// verifyMAC recomputes BLAKE2b-512-MAC(macKey, bytes[0:84)) and compares it
// against tag in constant time (invariant I5/I7).
func (h *header) verifyMAC(macKey, tag []byte) error {
	bytes := h.asBytes()
	if err := blake2bVerify(macKey, bytes[:offMac], tag); err != nil {
		return err
	}
	copy(h.mac[:], tag)
	return nil
}
