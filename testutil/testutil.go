package testutil

import (
	"math"
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Keys returns n keys drawn from distinct evenly spaced values in [0, 1).
// A small distinct count produces many duplicates, which is what most
// ordering tests want.
func (r *RNG) Keys(n, distinct int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]float64, n)
	for i := range keys {
		keys[i] = float64(r.rand.Intn(distinct)) / float64(distinct)
	}
	return keys
}

// Amount returns a non-negative value in [0, limit) rounded to one decimal,
// so generated data survives a text round trip unchanged.
func (r *RNG) Amount(limit float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return math.Round(r.rand.Float64()*limit*10) / 10
}

// Amounts returns n values from Amount. Locks only once per call.
func (r *RNG) Amounts(n int, limit float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round(r.rand.Float64()*limit*10) / 10
	}
	return out
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// Word returns a lowercase word of length n.
func (r *RNG) Word(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wordLocked(n)
}

// wordLocked is the internal implementation (caller must hold lock).
func (r *RNG) wordLocked(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(letters[r.rand.Intn(len(letters))])
	}
	return sb.String()
}

// Names returns n display names built from one to three short words.
// Names may repeat.
func (r *RNG) Names(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, n)
	for i := range names {
		words := make([]string, 1+r.rand.Intn(3))
		for j := range words {
			words[j] = r.wordLocked(2 + r.rand.Intn(4))
		}
		names[i] = strings.Join(words, " ")
	}
	return names
}

// SparsePresence returns n flags where each is false with probability
// missingRate. Useful for records that leave some attributes unset.
func (r *RNG) SparsePresence(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range present {
		present[i] = r.rand.Float64() >= missingRate
	}
	return present
}
