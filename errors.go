// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import (
	"errors"
	"fmt"
)

// Kind is a closed taxonomy of everything that can go wrong while parsing,
// authenticating or decrypting an abcrypt container.
type Kind int

const (
	// InvalidLength means the encrypted data was shorter than MinCiphertextSize.
	InvalidLength Kind = iota

	// InvalidMagicNumber means the magic number (file signature) was invalid.
	InvalidMagicNumber

	// UnsupportedVersion means the version number is recognized but not
	// processed by this implementation (currently version 0).
	UnsupportedVersion

	// UnknownVersion means the version number is not recognized at all.
	UnknownVersion

	// InvalidArgon2Type means the Argon2 type stored in the header is invalid.
	InvalidArgon2Type

	// InvalidArgon2Version means the Argon2 version stored in the header is invalid.
	InvalidArgon2Version

	// InvalidArgon2Params means the Argon2 parameters are out of range.
	InvalidArgon2Params

	// InvalidArgon2Context means deriving a key under the parsed Argon2
	// context failed (including the embedded memory budget and the
	// unsupported-Argon2d case; see Argon2SubErrorKind).
	InvalidArgon2Context

	// InvalidHeaderMAC means the header's BLAKE2b-512 MAC did not verify.
	// This is the error returned for a wrong passphrase.
	InvalidHeaderMAC

	// InvalidMAC means the payload's AEAD authentication tag did not verify.
	// Only returned after the header MAC has already verified.
	InvalidMAC
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidMagicNumber:
		return "InvalidMagicNumber"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case UnknownVersion:
		return "UnknownVersion"
	case InvalidArgon2Type:
		return "InvalidArgon2Type"
	case InvalidArgon2Version:
		return "InvalidArgon2Version"
	case InvalidArgon2Params:
		return "InvalidArgon2Params"
	case InvalidArgon2Context:
		return "InvalidArgon2Context"
	case InvalidHeaderMAC:
		return "InvalidHeaderMAC"
	case InvalidMAC:
		return "InvalidMAC"
	default:
		return "Kind(unknown)"
	}
}

// Error is the error type returned by every fallible operation in this
// package. Two Errors of the same Kind and Value compare equal under
// errors.Is; the wrapped sub-cause (if any) is reachable via errors.As.
type Error struct {
	Kind     Kind
	Value    uint32
	hasValue bool
	err      error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, err: err}
}

func newValueError(kind Kind, value uint32) *Error {
	return &Error{Kind: kind, Value: value, hasValue: true}
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("encrypted data is shorter than %d bytes", MinCiphertextSize)
	case InvalidMagicNumber:
		return "invalid magic number"
	case UnsupportedVersion:
		return fmt.Sprintf("unsupported version number `%d`", e.Value)
	case UnknownVersion:
		return fmt.Sprintf("unknown version number `%d`", e.Value)
	case InvalidArgon2Type:
		return fmt.Sprintf("invalid Argon2 type `%d`", e.Value)
	case InvalidArgon2Version:
		return fmt.Sprintf("invalid Argon2 version `%#x`", e.Value)
	case InvalidArgon2Params:
		return fmt.Sprintf("invalid Argon2 parameters: %v", e.err)
	case InvalidArgon2Context:
		return fmt.Sprintf("invalid Argon2 context: %v", e.err)
	case InvalidHeaderMAC:
		return "invalid header MAC"
	case InvalidMAC:
		return "invalid ciphertext MAC"
	default:
		return "abcrypt: unknown error"
	}
}

// Unwrap exposes the wrapped sub-cause, if any, to errors.As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same Kind (and, where the
// Kind carries one, the same Value or the same wrapped Argon2SubError). This
// mirrors the structural equality spec.md requires of the error taxonomy
// while still letting callers use plain
// errors.Is(err, abcrypt.ErrInvalidHeaderMAC)-style sentinels, whose err
// field is nil and therefore matches any sub-cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if e.hasValue || t.hasValue {
		return e.hasValue == t.hasValue && e.Value == t.Value
	}
	if e.err != nil && t.err != nil {
		return errors.Is(e.err, t.err)
	}
	return true
}

// Sentinel Errors for Kinds that never carry a value, for use with errors.Is.
var (
	ErrInvalidLength        = &Error{Kind: InvalidLength}
	ErrInvalidMagicNumber   = &Error{Kind: InvalidMagicNumber}
	ErrInvalidArgon2Params  = &Error{Kind: InvalidArgon2Params}
	ErrInvalidArgon2Context = &Error{Kind: InvalidArgon2Context}
	ErrInvalidHeaderMAC     = &Error{Kind: InvalidHeaderMAC}
	ErrInvalidMAC           = &Error{Kind: InvalidMAC}
)

// Argon2SubErrorKind is a closed set of sub-causes nested inside
// InvalidArgon2Params and InvalidArgon2Context Errors. It exists so tests
// (and callers) can assert on the exact underlying cause without this
// package re-exporting error values from golang.org/x/crypto/argon2,
// which defines none of its own.
type Argon2SubErrorKind int

const (
	// Argon2MemoryTooLittle means memoryCost is smaller than 8*parallelism.
	Argon2MemoryTooLittle Argon2SubErrorKind = iota

	// Argon2TimeCostZero means timeCost is zero.
	Argon2TimeCostZero

	// Argon2ParallelismRange means parallelism is outside [1, 2^24-1].
	Argon2ParallelismRange

	// Argon2UnsupportedVariant means the Argon2 type is Argon2d, which
	// golang.org/x/crypto/argon2 does not implement (it exposes only
	// Argon2i via Key and Argon2id via IDKey).
	Argon2UnsupportedVariant

	// Argon2MemoryBudgetExceeded means memoryCost exceeds the bound
	// enforced by ProfileEmbedded.
	Argon2MemoryBudgetExceeded

	// Argon2UnsupportedAlgorithmVersion means the Argon2 version is
	// 0x10, which golang.org/x/crypto/argon2 does not implement (its
	// Key and IDKey functions always run version 0x13).
	Argon2UnsupportedAlgorithmVersion

	// Argon2UnsupportedParallelism means parallelism is within the valid
	// Argon2 range but exceeds 255, which golang.org/x/crypto/argon2
	// cannot derive under: both Key and IDKey take threads as a uint8.
	// A header carrying such a value still parses; only derivation fails.
	Argon2UnsupportedParallelism
)

// Argon2SubError is the sub-cause wrapped by an InvalidArgon2Params or
// InvalidArgon2Context Error.
type Argon2SubError struct {
	kind Argon2SubErrorKind
}

// Kind returns the closed sub-cause tag.
func (e *Argon2SubError) Kind() Argon2SubErrorKind { return e.kind }

func (e *Argon2SubError) Error() string {
	switch e.kind {
	case Argon2MemoryTooLittle:
		return "memory cost is too little"
	case Argon2TimeCostZero:
		return "time cost is zero"
	case Argon2ParallelismRange:
		return "parallelism is out of range"
	case Argon2UnsupportedVariant:
		return "Argon2d derivation is not supported by this build"
	case Argon2MemoryBudgetExceeded:
		return "memory cost exceeds the embedded profile's budget"
	case Argon2UnsupportedAlgorithmVersion:
		return "Argon2 version 0x10 is not supported by this build"
	case Argon2UnsupportedParallelism:
		return "parallelism above 255 is not supported by this build"
	default:
		return "invalid Argon2 context"
	}
}

func (e *Argon2SubError) Is(target error) bool {
	t, ok := target.(*Argon2SubError)
	return ok && e.kind == t.kind
}

var (
	errMemoryTooLittle          = &Argon2SubError{Argon2MemoryTooLittle}
	errTimeCostZero             = &Argon2SubError{Argon2TimeCostZero}
	errParallelismRange         = &Argon2SubError{Argon2ParallelismRange}
	errUnsupportedArgon2Variant = &Argon2SubError{Argon2UnsupportedVariant}
	errMemoryBudgetExceeded     = &Argon2SubError{Argon2MemoryBudgetExceeded}
	errUnsupportedArgon2Version = &Argon2SubError{Argon2UnsupportedAlgorithmVersion}
	errUnsupportedParallelism   = &Argon2SubError{Argon2UnsupportedParallelism}
)
