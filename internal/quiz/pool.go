package quiz

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

// Pool is the shuffled stack of questions not yet asked in the current pass.
type Pool struct {
	catalog *Catalog
	rng     *rand.Rand
	cards   []entity.Question
}

// NewRand returns a source seeded with seed, or with the wall clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint: gosec // shuffling flashcards
}

// NewPool returns an empty pool; the first Draw or an explicit Refill fills it.
func NewPool(catalog *Catalog, rng *rand.Rand) *Pool {
	return &Pool{
		catalog: catalog,
		rng:     rng,
	}
}

// Refill replaces the remaining cards with a freshly shuffled copy of the whole catalog.
func (that *Pool) Refill() {
	that.cards = that.catalog.Questions()
	that.rng.Shuffle(len(that.cards), func(i, j int) {
		that.cards[i], that.cards[j] = that.cards[j], that.cards[i]
	})
}

// Draw pops the top card, reshuffling the whole catalog first if the pool ran dry.
func (that *Pool) Draw() entity.Question {
	if len(that.cards) == 0 {
		that.Refill()
	}

	last := len(that.cards) - 1
	card := that.cards[last]
	that.cards = that.cards[:last]

	return card
}

func (that *Pool) Len() int {
	return len(that.cards)
}

// Clear empties the pool without touching the catalog.
func (that *Pool) Clear() {
	that.cards = nil
}
