// Package argon2 provides a safe, ergonomic interface to the Argon2
// password-hashing algorithm: hashing of byte slices and strings,
// verification of candidates against previously produced hashes, and exact
// encoded-output length computation.
//
// # Architecture
//
// The package is a thin boundary layer over two compute backends. The Argon2i
// and Argon2id variants are computed by golang.org/x/crypto/argon2; the
// Argon2d variant, which x/crypto deliberately does not export, is computed
// through github.com/go-crypt/crypt. Neither backend type leaks into the
// public surface: callers see only [Context], [Mode], encoded hashes, and
// [Error] values.
//
// Every operation dispatches on a [Mode] — a closed three-member variant set
// resolved by a switch, not an open interface: the variant set is fixed by the
// Argon2 specification and will not grow.
//
// # Quick start
//
//	ctx, err := argon2.DefaultContext() // Argon2id, fresh random salt
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := argon2.HashString("my-secret-password", ctx)
//	err = argon2.VerifyString("my-secret-password", hash, argon2.Argon2id) // nil
//
// # Hash format
//
// Hashes are produced in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-digest>
//
// The string is self-describing: iterations, memory cost, parallelism, and
// salt are all embedded, so no [Context] is needed to verify it later. The
// byte length of the string is exactly [EncodedLen] of the Context that
// produced it.
//
// # Security defaults
//
// [DefaultContext] uses m=64 MiB, t=3 iterations, p=2 lanes, a 16-byte random
// salt, and a 32-byte digest. These exceed OWASP ASVS Level 2 requirements
// (m≥19 MiB, t≥2, p≥1).
//
// # Errors
//
// All failures are reported as *[Error] carrying an [ErrorCode]. Negative
// codes mirror the reference implementation's published status table
// unchanged; [CodeTextEncoding] (1) is the only code minted by this layer and
// cannot collide with a native code, which are all negative. Code 0 means
// success and is never wrapped in an error.
//
// # Concurrency
//
// All calls are synchronous and blocking. Context, Mode, and result values
// are immutable after construction, so concurrent calls on disjoint inputs
// are safe without locking. Argon2 is deliberately memory- and CPU-intensive;
// callers on latency-sensitive paths should hash on a worker goroutine.
// There is no cancellation: an in-flight derivation cannot be interrupted.
package argon2
