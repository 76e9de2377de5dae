package rfc9421

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultReplayCacheSize is the default LRU capacity for ReplayGuard
// (§4.8). Bounded rather than unbounded: an adversary sending many
// distinct nonces cannot grow server memory without bound, at the cost of
// a false-negative window once traffic evicts an old entry.
const DefaultReplayCacheSize = 4096

// ReplayGuard tracks (keyid, nonce) pairs seen within a signature's
// validity window, bounded by an LRU cache (§C8). It does not itself
// enforce the created/expires time window — that remains the Verifier's
// job; the guard only bounds memory.
type ReplayGuard struct {
	cache *lru.Cache[string, struct{}]
}

// NewReplayGuard constructs a ReplayGuard with the given capacity. A
// capacity of zero uses DefaultReplayCacheSize.
func NewReplayGuard(capacity int) (*ReplayGuard, error) {
	if capacity <= 0 {
		capacity = DefaultReplayCacheSize
	}
	cache, err := lru.New[string, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return &ReplayGuard{cache: cache}, nil
}

// Seen records-and-reports: the first call for a given (keyID, nonce) pair
// returns false and records it; every subsequent call for the same pair,
// while still resident in the LRU, returns true.
func (g *ReplayGuard) Seen(keyID, nonce string) bool {
	key := replayKey(keyID, nonce)
	// ContainsOrAdd checks and records under one lock, so two concurrent
	// first calls for the same pair cannot both report false.
	seen, _ := g.cache.ContainsOrAdd(key, struct{}{})
	return seen
}

func replayKey(keyID, nonce string) string {
	sum := sha256.Sum256([]byte(keyID + "\x00" + nonce))
	return hex.EncodeToString(sum[:])
}
