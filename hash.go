package argon2

import "unicode/utf8"

// Hash derives an Argon2 hash of data under ctx and returns it in PHC string
// form as a byte slice of exactly [EncodedLen](ctx) bytes. The returned
// buffer is freshly allocated and owned by the caller; it is never shared
// with internal state and never returned partially written.
//
// data is referenced directly and not copied; it is read but never modified.
//
// Failures carry the reference implementation's status codes: iterations
// below 1 → [CodeTimeTooSmall], parallelism below 1 → [CodeLanesTooFew],
// memory below 8×parallelism → [CodeMemoryTooLittle], salt shorter than
// 8 bytes → [CodeSaltTooShort], hash length below 4 → [CodeOutputTooShort].
func Hash(data []byte, ctx Context) ([]byte, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	derive, ok := ctx.Mode.derive()
	if !ok {
		return nil, &Error{Code: CodeIncorrectType}
	}
	key, err := derive(data, ctx.Salt, ctx.Iterations, ctx.Memory, ctx.Parallelism, ctx.HashLength)
	if err != nil {
		return nil, err
	}
	return encodePHC(&ctx, key)
}

// HashString is the text-oriented convenience form of [Hash]. The input must
// be valid UTF-8 and the output is returned as a string; either conversion
// failing yields [CodeTextEncoding]. The output check should never fire —
// the PHC encoding is ASCII — but the contract reports it explicitly rather
// than assuming.
func HashString(s string, ctx Context) (string, error) {
	if !utf8.ValidString(s) {
		return "", &Error{Code: CodeTextEncoding}
	}
	out, err := Hash([]byte(s), ctx)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", &Error{Code: CodeTextEncoding}
	}
	return string(out), nil
}
