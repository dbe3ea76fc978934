package hash

import "github.com/alexedwards/argon2id"

// Hasher is the one-way credential transform. Argon2id embeds the salt
// and cost parameters in the digest, so Verify needs no extra state
// beyond the optional server-side pepper.
type Hasher struct {
	pepper string
	params *argon2id.Params
}

func New(pepper string) *Hasher {
	return &Hasher{pepper: pepper, params: argon2id.DefaultParams}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	return argon2id.CreateHash(plaintext+h.pepper, h.params)
}

// Verify reports whether plaintext produced digest. A malformed digest
// counts as a failed verification rather than an error surfaced to the
// caller: login must answer yes or no, not crash.
func (h *Hasher) Verify(plaintext, digest string) bool {
	ok, err := argon2id.ComparePasswordAndHash(plaintext+h.pepper, digest)
	if err != nil {
		return false
	}
	return ok
}
