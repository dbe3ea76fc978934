package hash

import "testing"

func TestHasher_HashVerify(t *testing.T) {
	h := New("")
	digest, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if digest == "pw1" {
		t.Fatal("digest must not be the plaintext")
	}
	if !h.Verify("pw1", digest) {
		t.Fatal("verify of the original plaintext must succeed")
	}
	if h.Verify("pw2", digest) {
		t.Fatal("verify of a different plaintext must fail")
	}
}

func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	h := New("")
	d1, _ := h.Hash("pw1")
	d2, _ := h.Hash("pw1")
	if d1 == d2 {
		t.Fatal("argon2id digests must carry distinct salts")
	}
	if !h.Verify("pw1", d1) || !h.Verify("pw1", d2) {
		t.Fatal("both digests must verify against the plaintext")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := New("")
	if h.Verify("pw1", "not-a-digest") {
		t.Fatal("malformed digest must report a failed verification")
	}
}

func TestHasher_Pepper(t *testing.T) {
	plain := New("")
	peppered := New("pepper")
	digest, _ := peppered.Hash("pw1")
	if plain.Verify("pw1", digest) {
		t.Fatal("digest created with pepper must not verify without it")
	}
	if !peppered.Verify("pw1", digest) {
		t.Fatal("peppered verify must succeed")
	}
}
