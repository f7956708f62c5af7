package argon2_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/admkopec/argon2"
)

// Example_passwordStorage demonstrates the recommended flow: recommended
// parameters, a fresh random salt per password, verification against the
// self-describing hash.
func Example_passwordStorage() {
	ctx, err := argon2.DefaultContext()
	if err != nil {
		log.Fatal(err)
	}

	hash, err := argon2.HashString("my-secret-password", ctx)
	if err != nil {
		log.Fatal(err)
	}

	// Later: the hash embeds all parameters, only the variant is needed.
	err = argon2.VerifyString("my-secret-password", hash, argon2.Argon2id)
	fmt.Println(err == nil)
	// Output: true
}

// ExampleVerifyString_mismatch shows how a wrong password surfaces.
func ExampleVerifyString_mismatch() {
	ctx, err := argon2.DefaultContext()
	if err != nil {
		log.Fatal(err)
	}
	hash, err := argon2.HashString("correct horse", ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = argon2.VerifyString("wrong horse", hash, argon2.Argon2id)
	var aerr *argon2.Error
	if errors.As(err, &aerr) {
		fmt.Println(aerr.Code == argon2.CodeVerifyMismatch)
	}
	// Output: true
}

// ExampleEncodedLen shows the exact-length guarantee.
func ExampleEncodedLen() {
	ctx := argon2.Context{
		Iterations:  1,
		Memory:      8192,
		Parallelism: 1,
		Salt:        []byte("examplesalt00000"),
		HashLength:  32,
		Mode:        argon2.Argon2id,
	}
	hash, err := argon2.Hash([]byte("hunter2"), ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(hash) == argon2.EncodedLen(ctx))
	// Output: true
}

// ExampleInfo shows parameter extraction from a stored hash.
func ExampleInfo() {
	ctx := argon2.Context{
		Iterations:  1,
		Memory:      8192,
		Parallelism: 1,
		Salt:        []byte("examplesalt00000"),
		HashLength:  32,
		Mode:        argon2.Argon2id,
	}
	hash, err := argon2.HashString("hunter2", ctx)
	if err != nil {
		log.Fatal(err)
	}

	info, err := argon2.Info(hash)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(info.Mode, info.Memory, info.Iterations, info.Parallelism)
	// Output: argon2id 8192 1 1
}

// ExampleDetectMode shows recovering the variant from a stored hash when it
// was not tracked out-of-band.
func ExampleDetectMode() {
	mode, ok := argon2.DetectMode("$argon2i$v=19$m=65536,t=3,p=2$c2FsdHNhbHQ$AAAAAAAA")
	fmt.Println(mode, ok)
	// Output: argon2i true
}
