// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

// Package abcrypt implements the abcrypt v1 encrypted data format: a
// password-based authenticated file encryption container built on Argon2,
// XChaCha20-Poly1305 and a BLAKE2b-512 keyed MAC.
//
// A ciphertext is header(148) || payload(len(plaintext)) || tag(16). The
// header carries the Argon2 type/version/parameters plus a random salt and
// nonce, and is itself authenticated by a BLAKE2b-512 MAC distinct from the
// payload's AEAD tag, so a wrong passphrase is always detected before the
// payload is touched.
//
//	ciphertext, err := abcrypt.Encrypt(passphrase, plaintext)
//	plaintext, err := abcrypt.Decrypt(passphrase, ciphertext)
package abcrypt
