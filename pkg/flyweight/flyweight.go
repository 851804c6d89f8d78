// Package flyweight implements the flyweight pattern: playing cards interned
// in a bounded pool, so repeated requests for the same card share one
// instance instead of allocating a new one.
package flyweight

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"gitlab.com/tozd/go/errors"
)

// Card is the flyweight. Its intrinsic state never changes after creation.
type Card struct {
	Value string
	Suit  string
}

// String renders the card like "<Card: 9h>".
func (c *Card) String() string {
	return "<Card: " + c.Value + c.Suit + ">"
}

// Pool interns cards. Eviction is LRU: once the pool is full, the least
// recently requested card is dropped and a later request for it allocates a
// fresh instance.
type Pool struct {
	cache *lru.Cache[string, *Card]
}

// NewPool creates a pool holding at most size cards.
func NewPool(size int) (*Pool, error) {
	cache, err := lru.New[string, *Card](size)
	if err != nil {
		return nil, errors.Errorf("creating card pool: %w", err)
	}
	return &Pool{cache: cache}, nil
}

// Get returns the pooled card for value+suit, creating it on first request.
func (p *Pool) Get(value, suit string) *Card {
	key := value + suit
	if card, ok := p.cache.Get(key); ok {
		return card
	}
	card := &Card{Value: value, Suit: suit}
	p.cache.Add(key, card)
	return card
}

// Len returns the number of cards currently interned.
func (p *Pool) Len() int {
	return p.cache.Len()
}
