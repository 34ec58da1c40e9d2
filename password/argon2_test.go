package password

import (
	"errors"
	"strings"
	"testing"
)

func testCodec() *Codec {
	// Small parameters keep the suite fast; correctness does not depend on
	// the cost settings.
	return NewCodec(Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func TestHashAndVerify(t *testing.T) {
	codec := testCodec()

	digest, err := codec.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(digest, "$argon2id$") {
		t.Fatalf("digest not in PHC format: %q", digest)
	}

	ok, err := codec.Verify("correct horse battery staple", digest)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	codec := testCodec()

	digest, err := codec.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := codec.Verify("incorrect horse", digest)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestHashSaltsEveryDigest(t *testing.T) {
	codec := testCodec()

	first, err := codec.Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := codec.Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if first == second {
		t.Error("two digests of the same password are identical")
	}

	for _, digest := range []string{first, second} {
		ok, err := codec.Verify("same password", digest)
		if err != nil || !ok {
			t.Errorf("digest %q did not verify: ok=%v err=%v", digest, ok, err)
		}
	}
}

func TestNormalizationEquivalence(t *testing.T) {
	codec := testCodec()

	// U+00E9 (precomposed) vs U+0065 U+0301 (combining) are the same
	// character after NFKC.
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	digest, err := codec.Hash(composed)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := codec.Verify(decomposed, digest)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("NFKC-equivalent password rejected")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	codec := testCodec()

	cases := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not phc", "plainhash"},
		{"wrong algorithm", "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"bad version", "$argon2id$v=99$m=8192,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"missing params", "$argon2id$v=19$m=8192$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"zero time", "$argon2id$v=19$m=8192,t=0,p=1$c2FsdHNhbHQ$aGFzaGhhc2g"},
		{"bad salt", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaGhhc2g"},
		{"bad hash", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHQ$!!!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := codec.Verify("whatever", tc.digest)
			if ok {
				t.Error("malformed digest verified")
			}
			if !errors.Is(err, ErrMalformedDigest) {
				t.Errorf("want ErrMalformedDigest, got %v", err)
			}
		})
	}
}

func TestVerifyUsesEmbeddedParameters(t *testing.T) {
	// A digest produced with one cost configuration must verify under a
	// codec holding another, since the parameters travel in the digest.
	old := NewCodec(Config{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	current := NewCodec(Config{Memory: 16 * 1024, Time: 2, Parallelism: 2, SaltLength: 16, KeyLength: 32})

	digest, err := old.Hash("legacy password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := current.Verify("legacy password", digest)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("digest with older parameters rejected")
	}
}
