// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

// Decryptor parses and authenticates an abcrypt v1 container up front: by
// the time NewDecryptor returns successfully, the header MAC has already
// verified, so a wrong passphrase is always reported there, never from
// Decrypt itself (invariant I5).
type Decryptor struct {
	header *header
	key    *derivedKey
	body   []byte
	tag    []byte
}

// NewDecryptor parses the header, derives the key under the parameters
// recorded in it, and verifies the header MAC before returning. ciphertext
// must outlive the returned Decryptor; Decrypt reads the body directly out
// of it.
func NewDecryptor(passphrase, ciphertext []byte) (*Decryptor, error) {
	h, err := parseHeader(ciphertext)
	if err != nil {
		return nil, err
	}

	dk, err := deriveKey(h.argon2Type, h.argon2Version, h.params, ProfileDefault, passphrase, h.salt[:])
	if err != nil {
		return nil, err
	}

	if err := h.verifyMAC(dk.mac[:], ciphertext[offMac:HeaderSize]); err != nil {
		return nil, err
	}

	return &Decryptor{
		header: h,
		key:    dk,
		body:   ciphertext[HeaderSize : len(ciphertext)-TagSize],
		tag:    ciphertext[len(ciphertext)-TagSize:],
	}, nil
}

// OutLen returns the exact length Decrypt requires of out.
func (d *Decryptor) OutLen() int {
	return len(d.body)
}

// Decrypt writes the plaintext into out, which must have length exactly
// OutLen(). On a tag mismatch it returns ErrInvalidMAC and out's contents
// are unspecified; they must not be treated as plaintext.
func (d *Decryptor) Decrypt(out []byte) error {
	if len(out) != d.OutLen() {
		panic("abcrypt: Decrypt: len(out) != OutLen()")
	}
	copy(out, d.body)
	return aeadOpen(&d.key.enc, d.header.nonce[:], out, d.tag)
}

// DecryptToSlice allocates and returns the plaintext.
func (d *Decryptor) DecryptToSlice() ([]byte, error) {
	out := make([]byte, d.OutLen())
	if err := d.Decrypt(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt is the one-shot convenience form of NewDecryptor followed by
// DecryptToSlice.
func Decrypt(passphrase, ciphertext []byte) ([]byte, error) {
	d, err := NewDecryptor(passphrase, ciphertext)
	if err != nil {
		return nil, err
	}
	return d.DecryptToSlice()
}
