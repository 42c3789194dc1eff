// Copyright (c) 2020-2026 abcrypt-go contributors
// Licensed under the MIT License. See LICENSE for details.

package abcrypt

import "encoding/binary"

// ParamsSize is the number of bytes of the on-disk Argon2 parameters triple.
const ParamsSize = 12

// Default Argon2 parameters, following OWASP's password storage guidance.
const (
	DefaultMemoryCost uint32 = 19456
	DefaultTimeCost   uint32 = 2
	DefaultThreads    uint32 = 1
)

// minParallelism and maxParallelism bound the parallelism (p_cost) Argon2
// itself accepts (RFC 9106), independent of what this build can actually
// derive under. A header naming a parallelism above what
// golang.org/x/crypto/argon2 can run (it takes threads as a uint8) still
// parses and validates here; argon2Derive rejects it only when derivation
// is actually attempted, the same two-step treatment Argon2d and version
// 0x10 already get.
const (
	minParallelism = 1
	maxParallelism = 1<<24 - 1
)

// Params is the Argon2 (memoryCost, timeCost, parallelism) triple used to
// derive the key material for an abcrypt container.
type Params struct {
	memoryCost  uint32
	timeCost    uint32
	parallelism uint32
}

// DefaultParams returns the recommended Argon2 parameters (19456 KiB, 2
// passes, 1 lane).
func DefaultParams() Params {
	return Params{
		memoryCost:  DefaultMemoryCost,
		timeCost:    DefaultTimeCost,
		parallelism: DefaultThreads,
	}
}

// NewParams validates and constructs a Params triple. memoryCost is in
// KiB and must be at least 8*parallelism; timeCost must be at least 1;
// parallelism must be in [1, 2^24-1]. A parallelism this build cannot
// actually derive under (above 255) still constructs here; it only fails
// once a derivation is attempted, with Argon2UnsupportedParallelism.
func NewParams(memoryCost, timeCost, parallelism uint32) (Params, error) {
	if parallelism < minParallelism || parallelism > maxParallelism {
		return Params{}, newError(InvalidArgon2Params, errParallelismRange)
	}
	if timeCost < 1 {
		return Params{}, newError(InvalidArgon2Params, errTimeCostZero)
	}
	if memoryCost < 8*parallelism {
		return Params{}, newError(InvalidArgon2Params, errMemoryTooLittle)
	}
	return Params{memoryCost: memoryCost, timeCost: timeCost, parallelism: parallelism}, nil
}

// MemoryCost returns the memory cost in KiB.
func (p Params) MemoryCost() uint32 { return p.memoryCost }

// TimeCost returns the number of passes.
func (p Params) TimeCost() uint32 { return p.timeCost }

// Parallelism returns the degree of parallelism.
func (p Params) Parallelism() uint32 { return p.parallelism }

// Encode writes the 12-byte little-endian (memoryCost, timeCost,
// parallelism) triple into out. out must be at least ParamsSize bytes.
func (p Params) Encode(out []byte) {
	binary.LittleEndian.PutUint32(out[0:4], p.memoryCost)
	binary.LittleEndian.PutUint32(out[4:8], p.timeCost)
	binary.LittleEndian.PutUint32(out[8:12], p.parallelism)
}

// DecodeParams reads a 12-byte little-endian (memoryCost, timeCost,
// parallelism) triple and validates it.
func DecodeParams(in []byte) (Params, error) {
	memoryCost := binary.LittleEndian.Uint32(in[0:4])
	timeCost := binary.LittleEndian.Uint32(in[4:8])
	parallelism := binary.LittleEndian.Uint32(in[8:12])
	return NewParams(memoryCost, timeCost, parallelism)
}
