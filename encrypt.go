// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

// Encryptor assembles an abcrypt v1 container for a single plaintext: it
// builds the header (fresh salt and nonce), runs the key schedule and
// computes the header MAC up front, so that Encrypt itself can never fail.
type Encryptor struct {
	header    *header
	key       *derivedKey
	plaintext []byte
}

// NewEncryptor constructs an Encryptor using DefaultArgon2Type,
// DefaultArgon2Version and DefaultParams.
func NewEncryptor(passphrase, plaintext []byte) (*Encryptor, error) {
	return newEncryptor(passphrase, plaintext, DefaultArgon2Type, DefaultArgon2Version, DefaultParams(), ProfileDefault)
}

// NewEncryptorWithParams is like NewEncryptor but with caller-supplied
// Argon2 parameters.
func NewEncryptorWithParams(passphrase, plaintext []byte, params Params) (*Encryptor, error) {
	return newEncryptor(passphrase, plaintext, DefaultArgon2Type, DefaultArgon2Version, params, ProfileDefault)
}

// NewEncryptorWithType is like NewEncryptorWithParams but with a
// caller-supplied Argon2 type.
func NewEncryptorWithType(passphrase, plaintext []byte, typ Argon2Type, params Params) (*Encryptor, error) {
	return newEncryptor(passphrase, plaintext, typ, DefaultArgon2Version, params, ProfileDefault)
}

// NewEncryptorWithContext is the fully general constructor: caller-supplied
// Argon2 type, Argon2 version and Profile (the embedded profile bounds
// params.MemoryCost to embeddedMemoryCostLimit KiB).
func NewEncryptorWithContext(passphrase, plaintext []byte, typ Argon2Type, ver Argon2Version, params Params, profile Profile) (*Encryptor, error) {
	return newEncryptor(passphrase, plaintext, typ, ver, params, profile)
}

func newEncryptor(passphrase, plaintext []byte, typ Argon2Type, ver Argon2Version, params Params, profile Profile) (*Encryptor, error) {
	h, err := newHeader(typ, ver, params)
	if err != nil {
		return nil, err
	}
	dk, err := deriveKey(typ, ver, params, profile, passphrase, h.salt[:])
	if err != nil {
		return nil, err
	}
	if err := h.computeMAC(dk.mac[:]); err != nil {
		return nil, err
	}
	return &Encryptor{header: h, key: dk, plaintext: plaintext}, nil
}

// OutLen returns the exact length Encrypt requires of out: the header, the
// plaintext, and the 16-byte AEAD tag.
func (e *Encryptor) OutLen() int {
	return HeaderSize + len(e.plaintext) + TagSize
}

// Encrypt writes the complete container into out, which must have length
// exactly OutLen(). It panics otherwise: by the time an Encryptor exists,
// nothing about encryption itself can fail, so a length mismatch can only
// be a caller bug.
func (e *Encryptor) Encrypt(out []byte) {
	if len(out) != e.OutLen() {
		panic("abcrypt: Encrypt: len(out) != OutLen()")
	}

	headerBytes := e.header.asBytes()
	copy(out[:HeaderSize], headerBytes[:])

	body := out[HeaderSize : e.OutLen()-TagSize]
	copy(body, e.plaintext)

	tag, err := aeadSeal(&e.key.enc, e.header.nonce[:], body)
	if err != nil {
		panic(err)
	}
	copy(out[e.OutLen()-TagSize:], tag)
}

// EncryptToSlice allocates and returns the complete container.
func (e *Encryptor) EncryptToSlice() []byte {
	out := make([]byte, e.OutLen())
	e.Encrypt(out)
	return out
}

// Encrypt is the one-shot convenience form of NewEncryptor followed by
// EncryptToSlice.
func Encrypt(passphrase, plaintext []byte) ([]byte, error) {
	e, err := NewEncryptor(passphrase, plaintext)
	if err != nil {
		return nil, err
	}
	return e.EncryptToSlice(), nil
}

// EncryptWithParams is the one-shot convenience form of
// NewEncryptorWithParams followed by EncryptToSlice.
func EncryptWithParams(passphrase, plaintext []byte, params Params) ([]byte, error) {
	e, err := NewEncryptorWithParams(passphrase, plaintext, params)
	if err != nil {
		return nil, err
	}
	return e.EncryptToSlice(), nil
}

// EncryptWithType is the one-shot convenience form of
// NewEncryptorWithType followed by EncryptToSlice.
func EncryptWithType(passphrase, plaintext []byte, typ Argon2Type, params Params) ([]byte, error) {
	e, err := NewEncryptorWithType(passphrase, plaintext, typ, params)
	if err != nil {
		return nil, err
	}
	return e.EncryptToSlice(), nil
}

// EncryptWithContext is the one-shot convenience form of
// NewEncryptorWithContext followed by EncryptToSlice.
func EncryptWithContext(passphrase, plaintext []byte, typ Argon2Type, ver Argon2Version, params Params, profile Profile) ([]byte, error) {
	e, err := NewEncryptorWithContext(passphrase, plaintext, typ, ver, params, profile)
	if err != nil {
		return nil, err
	}
	return e.EncryptToSlice(), nil
}
