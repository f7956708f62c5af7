package argon2

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	xargon2 "golang.org/x/crypto/argon2"
)

// Version is the Argon2 specification version produced and accepted by this
// package (0x13 = 19). It is embedded in every encoded hash.
const Version = xargon2.Version

// b64 is the PHC alphabet: standard base64 without padding.
var b64 = base64.RawStdEncoding

// EncodedLen returns the exact byte length of the hash [Hash] produces for
// ctx — an equality, not an upper bound. It mirrors the reference
// implementation's argon2_encodedlen, minus the trailing NUL that routine
// budgets for C strings; the Go result is the string length and nothing more.
//
// EncodedLen is pure and does not pre-validate ctx; out-of-range fields are
// rejected by [Hash] itself.
func EncodedLen(ctx Context) int {
	// $<variant>$v=19$m=<m>,t=<t>,p=<p>$<salt_b64>$<digest_b64>
	return 1 + len(ctx.Mode.String()) +
		3 + numLen(uint64(Version)) +
		3 + numLen(uint64(ctx.Memory)) +
		3 + numLen(uint64(ctx.Iterations)) +
		3 + numLen(uint64(ctx.Parallelism)) +
		1 + b64.EncodedLen(len(ctx.Salt)) +
		1 + b64.EncodedLen(int(ctx.HashLength))
}

// numLen returns the number of decimal digits in v.
func numLen(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// phcHash holds parameters and raw values decoded from a PHC hash string.
type phcHash struct {
	mode    Mode
	version int
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

// encodePHC serialises a derived digest in PHC string format. The output is
// written into a single buffer of exactly [EncodedLen] capacity, whose
// ownership transfers to the caller on return; no second copy is made. A
// final length that differs from the computed one indicates corrupted
// parameters and fails closed instead of returning a short or oversized
// buffer.
func encodePHC(ctx *Context, key []byte) ([]byte, error) {
	want := EncodedLen(*ctx)
	out := make([]byte, 0, want)
	out = fmt.Appendf(out, "$%s$v=%d$m=%d,t=%d,p=%d$",
		ctx.Mode, Version, ctx.Memory, ctx.Iterations, ctx.Parallelism)
	out = append(out, b64.EncodeToString(ctx.Salt)...)
	out = append(out, '$')
	out = append(out, b64.EncodeToString(key)...)
	if len(out) != want {
		return nil, &Error{Code: CodeEncodingFail}
	}
	return out, nil
}

// decodePHC parses an Argon2 PHC hash string and returns its components.
//
// Expected format (6 dollar-delimited segments, first is empty):
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
//
// Structural problems yield [CodeDecodingFail]; numeric fields outside their
// representable range yield [CodeDecodingLengthFail], matching the reference
// implementation's split between decoding and length failures.
func decodePHC(encoded string) (*phcHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, &Error{Code: CodeDecodingFail}
	}

	mode, ok := parseModeName(parts[1])
	if !ok {
		return nil, &Error{Code: CodeDecodingFail}
	}

	version, err := parseKV(parts[2], "v")
	if err != nil || version != Version {
		return nil, &Error{Code: CodeDecodingFail}
	}

	kvs, err := parseParams(parts[3])
	if err != nil {
		return nil, &Error{Code: CodeDecodingFail}
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	threads, ok3 := kvs["p"]
	if !ok1 || !ok2 || !ok3 || len(kvs) != 3 {
		return nil, &Error{Code: CodeDecodingFail}
	}
	if memory > math.MaxUint32 || time > math.MaxUint32 || threads > math.MaxUint8 {
		return nil, &Error{Code: CodeDecodingLengthFail}
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return nil, &Error{Code: CodeDecodingFail}
	}
	hash, err := b64.DecodeString(parts[5])
	if err != nil {
		return nil, &Error{Code: CodeDecodingFail}
	}
	if len(hash) == 0 {
		return nil, &Error{Code: CodeDecodingLengthFail}
	}

	return &phcHash{
		mode:    mode,
		version: int(version),
		memory:  uint32(memory),
		time:    uint32(time),
		threads: uint8(threads),
		salt:    salt,
		hash:    hash,
	}, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}

// parseParams splits "m=65536,t=3,p=2" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}
