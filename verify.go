package argon2

import (
	"crypto/subtle"
	"unicode/utf8"
)

// Verify checks candidate against a previously produced encoded hash.
// It returns nil on a match and *[Error] otherwise: [CodeVerifyMismatch] for
// a wrong candidate, [CodeDecodingFail] (or [CodeDecodingLengthFail]) for a
// malformed hash, and [CodeIncorrectType] when mode contradicts the variant
// tag embedded in the hash.
//
// All parameters are read from the hash itself, so no [Context] is needed.
// The embedded variant tag is authoritative; mode is only cross-checked
// against it, never trusted over it. Use [DetectMode] first when the variant
// is not known out-of-band.
//
// The decoded parameters are re-validated before any derivation runs, both
// the reference minimums and this layer's cost ceilings, so a hostile hash
// string cannot drive the backend out of range — an oversized memory or time
// cost yields [CodeMemoryTooMuch] or [CodeTimeTooLarge] instead of exhausting
// the process. No output
// buffer is allocated; the digest is re-derived and compared in constant
// time.
func Verify(candidate, encoded []byte, mode Mode) error {
	ph, err := decodePHC(string(encoded))
	if err != nil {
		return err
	}
	if ph.mode != mode {
		return &Error{Code: CodeIncorrectType}
	}

	ctx := Context{
		Iterations:  ph.time,
		Memory:      ph.memory,
		Parallelism: ph.threads,
		Salt:        ph.salt,
		HashLength:  uint32(len(ph.hash)),
		Mode:        ph.mode,
	}
	if err := ctx.validate(); err != nil {
		return err
	}

	derive, ok := ph.mode.derive()
	if !ok {
		return &Error{Code: CodeIncorrectType}
	}
	computed, err := derive(candidate, ph.salt, ph.time, ph.memory, ph.threads, uint32(len(ph.hash)))
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(computed, ph.hash) != 1 {
		return &Error{Code: CodeVerifyMismatch}
	}
	return nil
}

// VerifyString is the text-oriented convenience form of [Verify]. Both
// strings must be valid UTF-8; either failing yields [CodeTextEncoding].
func VerifyString(candidate, encoded string, mode Mode) error {
	if !utf8.ValidString(candidate) || !utf8.ValidString(encoded) {
		return &Error{Code: CodeTextEncoding}
	}
	return Verify([]byte(candidate), []byte(encoded), mode)
}
