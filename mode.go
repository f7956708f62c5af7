package argon2

import (
	"strings"

	gcargon2 "github.com/go-crypt/crypt/algorithm/argon2"
	xargon2 "golang.org/x/crypto/argon2"
)

// Mode selects the Argon2 variant. The set is closed: the Argon2
// specification defines exactly these three and no more will be added.
type Mode int

const (
	// Argon2d uses data-dependent memory access. Fastest and most resistant
	// to time-memory trade-off attacks, but vulnerable to side-channel
	// attacks. Suitable for backend-only workloads such as cryptocurrencies.
	Argon2d Mode = iota

	// Argon2i uses data-independent memory access, which makes it resistant
	// to side-channel attacks at the cost of extra passes over memory.
	Argon2i

	// Argon2id is the hybrid of the two and the recommended default for
	// password hashing (RFC 9106).
	Argon2id
)

// String returns the variant tag as it appears in encoded hashes
// ("argon2d", "argon2i", "argon2id").
func (m Mode) String() string {
	switch m {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return "unknown"
	}
}

// parseModeName maps a variant tag from an encoded hash back to its Mode.
func parseModeName(name string) (Mode, bool) {
	switch name {
	case "argon2d":
		return Argon2d, true
	case "argon2i":
		return Argon2i, true
	case "argon2id":
		return Argon2id, true
	default:
		return 0, false
	}
}

// DetectMode inspects an encoded hash and returns the variant that produced
// it, based on the embedded tag. The second return value is false when the
// prefix is not a recognised Argon2 variant. DetectMode does not validate the
// rest of the hash.
func DetectMode(encoded string) (Mode, bool) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		return Argon2id, true
	case strings.HasPrefix(encoded, "$argon2i$"):
		return Argon2i, true
	case strings.HasPrefix(encoded, "$argon2d$"):
		return Argon2d, true
	default:
		return 0, false
	}
}

// deriveFunc computes the raw digest for one variant. The i and id entries
// cannot fail once parameters have been validated; the d entry can surface
// backend errors.
type deriveFunc func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error)

// derive resolves the compute entry point for the variant. Resolved once per
// call; the false return covers Mode values outside the closed set.
func (m Mode) derive() (deriveFunc, bool) {
	switch m {
	case Argon2d:
		return deriveD, true
	case Argon2i:
		return func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
			return xargon2.Key(password, salt, time, memory, threads, keyLen), nil
		}, true
	case Argon2id:
		return func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
			return xargon2.IDKey(password, salt, time, memory, threads, keyLen), nil
		}, true
	default:
		return nil, false
	}
}

// deriveD computes an Argon2d digest. x/crypto exports only the i and id
// variants, so the d variant runs through go-crypt's hasher; the raw digest
// is recovered from its PHC output, which uses the same encoding this
// package produces.
func deriveD(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	hasher, err := gcargon2.New(
		gcargon2.WithVariant(gcargon2.VariantD),
		gcargon2.WithIterations(int(time)),
		gcargon2.WithMemoryInKiB(memory),
		gcargon2.WithParallelism(int(threads)),
		gcargon2.WithKeyLength(int(keyLen)),
	)
	if err != nil {
		return nil, &Error{Code: CodeIncorrectParameter}
	}
	digest, err := hasher.HashWithSalt(string(password), salt)
	if err != nil {
		return nil, &Error{Code: CodeIncorrectParameter}
	}
	ph, err := decodePHC(digest.Encode())
	if err != nil {
		return nil, err
	}
	return ph.hash, nil
}
