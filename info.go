package argon2

// HashInfo carries the parameters parsed out of an encoded hash. Useful for
// auditing, migration tooling, or logging — it proves nothing about whether
// the hash matches any input.
type HashInfo struct {
	Mode        Mode
	Version     int
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	Salt        []byte
	HashLength  uint32
}

// Info parses an encoded hash and returns its embedded parameters without
// performing any derivation. Malformed input yields [CodeDecodingFail].
func Info(encoded string) (HashInfo, error) {
	ph, err := decodePHC(encoded)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Mode:        ph.mode,
		Version:     ph.version,
		Memory:      ph.memory,
		Iterations:  ph.time,
		Parallelism: ph.threads,
		Salt:        ph.salt,
		HashLength:  uint32(len(ph.hash)),
	}, nil
}

// NeedsRehash reports whether the hash was produced with parameters that
// differ from ctx — weaker or merely different. Callers storing passwords
// should re-hash on the next successful verification when this returns true.
// A hash of a different variant than ctx.Mode yields [CodeIncorrectType];
// salts are deliberately not compared.
func NeedsRehash(encoded string, ctx Context) (bool, error) {
	ph, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}
	if ph.mode != ctx.Mode {
		return false, &Error{Code: CodeIncorrectType}
	}
	return ph.memory != ctx.Memory ||
		ph.time != ctx.Iterations ||
		ph.threads != ctx.Parallelism ||
		uint32(len(ph.hash)) != ctx.HashLength, nil
}
