package argon2

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// DefaultIterations is the default number of passes over memory.
	DefaultIterations uint32 = 3

	// DefaultMemory is the default memory cost in KiB (64 MiB). OWASP ASVS
	// Level 2 requires ≥ 19 MiB; 64 MiB is the standard production
	// recommendation for Argon2id.
	DefaultMemory uint32 = 64 * 1024

	// DefaultParallelism is the default number of lanes.
	DefaultParallelism uint8 = 2

	// DefaultHashLength is the default raw digest length in bytes.
	DefaultHashLength uint32 = 32

	// DefaultSaltLength is the default random salt length in bytes.
	DefaultSaltLength uint32 = 16
)

// Minimums enforced by the reference implementation's input validation.
const (
	minIterations  uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  int    = 8
	minHashLength  uint32 = 4
)

// Ceilings on the cost parameters. The reference implementation admits the
// full 32-bit range, but decoded hash parameters reach the compute backend
// where an oversized memory cost is an unrecoverable runtime OOM rather than
// a returnable error, so this layer enforces tighter bounds: 4 GiB of memory
// and 2^24 passes, far above any published recommendation.
const (
	maxIterations uint32 = 1 << 24
	maxMemory     uint32 = 1 << 22 // KiB, 4 GiB
)

// Context is the immutable parameter bundle for a hash operation.
//
// A Context is not mutated by any operation in this package; construct one,
// use it for as many calls as you like. Reusing a Context reuses its Salt,
// which makes hashing deterministic — desirable for key derivation, wrong
// for storing passwords. For password storage, generate a fresh salt (or a
// fresh [DefaultContext]) per hash.
type Context struct {
	// Iterations is the time cost: the number of passes over memory.
	// Minimum 1, maximum 2^24.
	Iterations uint32

	// Memory is the memory cost in KiB. Minimum 8 × Parallelism,
	// maximum 4 GiB.
	Memory uint32

	// Parallelism is the number of lanes the computation is spread across.
	// Minimum 1.
	Parallelism uint8

	// Salt is mixed into the derivation and embedded in the encoded output.
	// Minimum 8 bytes; 16 random bytes recommended.
	Salt []byte

	// HashLength is the raw digest length in bytes, before base64 encoding.
	// Minimum 4.
	HashLength uint32

	// Mode selects the Argon2 variant.
	Mode Mode
}

// DefaultContext returns a Context with the recommended parameters
// ([DefaultIterations], [DefaultMemory], [DefaultParallelism],
// [DefaultHashLength], [Argon2id]) and a freshly generated random salt of
// [DefaultSaltLength] bytes. It fails only if the system random source does.
func DefaultContext() (Context, error) {
	salt, err := RandomSalt(DefaultSaltLength)
	if err != nil {
		return Context{}, err
	}
	return Context{
		Iterations:  DefaultIterations,
		Memory:      DefaultMemory,
		Parallelism: DefaultParallelism,
		Salt:        salt,
		HashLength:  DefaultHashLength,
		Mode:        Argon2id,
	}, nil
}

// RandomSalt returns n cryptographically random bytes.
func RandomSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("argon2: failed to generate salt: %w", err)
	}
	return b, nil
}

// validate applies the reference implementation's minimum checks plus this
// layer's cost ceilings, returning the status codes the reference
// validate_inputs routine uses. The x/crypto backend panics on undersized
// parameters and OOMs on oversized ones rather than reporting them, so the
// checks must run before dispatch — for hash contexts and for parameters
// decoded out of untrusted hash strings alike.
func (c *Context) validate() error {
	if c.Iterations < minIterations {
		return &Error{Code: CodeTimeTooSmall}
	}
	if c.Iterations > maxIterations {
		return &Error{Code: CodeTimeTooLarge}
	}
	if c.Parallelism < minParallelism {
		return &Error{Code: CodeLanesTooFew}
	}
	if c.Memory < 8*uint32(c.Parallelism) {
		return &Error{Code: CodeMemoryTooLittle}
	}
	if c.Memory > maxMemory {
		return &Error{Code: CodeMemoryTooMuch}
	}
	if len(c.Salt) < minSaltLength {
		return &Error{Code: CodeSaltTooShort}
	}
	if c.HashLength < minHashLength {
		return &Error{Code: CodeOutputTooShort}
	}
	return nil
}
