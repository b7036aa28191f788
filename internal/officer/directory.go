// Package officer holds the directory of reviewing officers assigned to
// approved applications.
package officer

import (
	"math/rand"
	"sync"
)

// Officer identifies a reviewing officer attached to an approved application.
type Officer struct {
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	ContactNumber string `json:"contact_number"`
}

// Directory picks a reviewer uniformly at random from a fixed list. The
// randomness source is injectable so tests can pin the sequence.
type Directory struct {
	mu       sync.Mutex
	officers []Officer
	rng      *rand.Rand
}

type Option func(*Directory)

// WithRand overrides the randomness source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(d *Directory) {
		d.rng = rng
	}
}

// NewDirectory builds a directory over the given officers. Panics on an empty
// list: a scheme deployment without reviewers is a wiring bug, not a runtime
// condition.
func NewDirectory(officers []Officer, opts ...Option) *Directory {
	if len(officers) == 0 {
		panic("officer: directory requires at least one officer")
	}
	d := &Directory{officers: officers}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return d
}

// PickReviewer returns one officer uniformly at random.
func (d *Directory) PickReviewer() Officer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.officers[d.rng.Intn(len(d.officers))]
}

// DefaultOfficers is the reviewing roster for the pilot district.
func DefaultOfficers() []Officer {
	return []Officer{
		{
			Name:          "Dr. Ashok Kumar Mishra",
			Designation:   "District Magistrate",
			ContactNumber: "011-12345678",
		},
		{
			Name:          "Mrs. Neha Agarwal",
			Designation:   "Block Development Officer",
			ContactNumber: "011-23456789",
		},
		{
			Name:          "Mr. Suresh Chandra",
			Designation:   "Tehsildar",
			ContactNumber: "011-34567890",
		},
	}
}
