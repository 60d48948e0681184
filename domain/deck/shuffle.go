package deck

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

var (
	processRand *rand.Rand
	randOnce    sync.Once
)

// NewSeed draws a 32 byte seed from the Ed25519 suite random stream.
func NewSeed() [32]byte {
	var seed [32]byte
	suite.RandomStream().XORKeyStream(seed[:], seed[:])
	return seed
}

// ProcessRand returns the process-wide generator used by decks built
// without WithRand. It is seeded once from the suite random stream.
func ProcessRand() *rand.Rand {
	randOnce.Do(func() {
		processRand = rand.New(rand.NewChaCha8(NewSeed()))
	})
	return processRand
}

// SeededRand returns a deterministic generator for replays and tests.
func SeededRand(seed uint64) *rand.Rand {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	return rand.New(rand.NewChaCha8(b))
}

// Shuffle reorders the undealt cards with a Fisher-Yates permutation.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
