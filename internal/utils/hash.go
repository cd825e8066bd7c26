package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer produces and checks the HashSHA256 signature of a response body.
// Each Signer pools its own HMAC hashers, so signers built from different
// keys can be used side by side.
//
// A Signer must not be copied after first use.
type Signer struct {
	hashers sync.Pool
}

// NewSigner returns a Signer keyed with key.
func NewSigner(key string) *Signer {
	s := &Signer{}
	s.hashers.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}

	return s
}

// Sign returns the hex-encoded HMAC-SHA256 of body.
func (s *Signer) Sign(body []byte) string {
	h := s.hashers.Get().(hash.Hash)
	defer s.hashers.Put(h)

	h.Reset()
	h.Write(body)

	return hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature is the signature of body. The
// comparison runs in constant time.
func (s *Signer) Verify(body []byte, signature string) bool {
	return hmac.Equal([]byte(s.Sign(body)), []byte(signature))
}
