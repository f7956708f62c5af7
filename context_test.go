package argon2_test

import (
	"bytes"
	"testing"

	"github.com/admkopec/argon2"
)

func TestDefaultContext_RecommendedParameters(t *testing.T) {
	ctx, err := argon2.DefaultContext()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Iterations != argon2.DefaultIterations {
		t.Errorf("Iterations = %d, want %d", ctx.Iterations, argon2.DefaultIterations)
	}
	if ctx.Memory != argon2.DefaultMemory {
		t.Errorf("Memory = %d, want %d", ctx.Memory, argon2.DefaultMemory)
	}
	if ctx.Parallelism != argon2.DefaultParallelism {
		t.Errorf("Parallelism = %d, want %d", ctx.Parallelism, argon2.DefaultParallelism)
	}
	if ctx.HashLength != argon2.DefaultHashLength {
		t.Errorf("HashLength = %d, want %d", ctx.HashLength, argon2.DefaultHashLength)
	}
	if uint32(len(ctx.Salt)) != argon2.DefaultSaltLength {
		t.Errorf("len(Salt) = %d, want %d", len(ctx.Salt), argon2.DefaultSaltLength)
	}
	if ctx.Mode != argon2.Argon2id {
		t.Errorf("Mode = %v, want %v", ctx.Mode, argon2.Argon2id)
	}
}

func TestDefaultContext_FreshSalts(t *testing.T) {
	c1, err := argon2.DefaultContext()
	if err != nil {
		t.Fatal(err)
	}
	c2, err := argon2.DefaultContext()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(c1.Salt, c2.Salt) {
		t.Error("two DefaultContext calls must generate different salts")
	}
}

func TestRandomSalt(t *testing.T) {
	for _, n := range []uint32{8, 16, 32} {
		salt, err := argon2.RandomSalt(n)
		if err != nil {
			t.Fatal(err)
		}
		if uint32(len(salt)) != n {
			t.Errorf("len(RandomSalt(%d)) = %d", n, len(salt))
		}
	}
	a, _ := argon2.RandomSalt(16)
	b, _ := argon2.RandomSalt(16)
	if bytes.Equal(a, b) {
		t.Error("two RandomSalt calls must return different bytes")
	}
}

// TestContext_ValueSemantics checks that operations never mutate the caller's
// Context or its salt.
func TestContext_ValueSemantics(t *testing.T) {
	ctx := fastCtx(argon2.Argon2id)
	saltCopy := append([]byte(nil), ctx.Salt...)
	before := ctx

	if _, err := argon2.Hash([]byte("pw"), ctx); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ctx.Salt, saltCopy) {
		t.Error("Hash mutated the salt")
	}
	if ctx.Iterations != before.Iterations || ctx.Memory != before.Memory ||
		ctx.Parallelism != before.Parallelism || ctx.HashLength != before.HashLength ||
		ctx.Mode != before.Mode {
		t.Error("Hash mutated the Context")
	}
}
