package panel

import "math/rand"

// KindGenerator produces the block kinds for a fresh field.
type KindGenerator interface {
	// Generate returns exactly Blocks kinds in slot order. The bottom rows
	// rows are filled from categories distinct kinds; the rest are KindEmpty.
	Generate(rows, categories int) []Kind
}

// RandomGenerator fills the stack with random kinds without creating any
// ready-made match.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator seeded with seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate implements KindGenerator.
func (r *RandomGenerator) Generate(rows, categories int) []Kind {
	kinds := make([]Kind, Blocks)
	for i := range kinds {
		kinds[i] = KindEmpty
	}

	rows = min(max(rows, 0), Rows)
	categories = max(categories, 1)

	allowed := make([]Kind, 0, categories)
	for y := range rows {
		for x := range Cols {
			allowed = allowed[:0]
			for k := range categories {
				kind := Kind(k)
				if x >= 2 && kinds[Index(x-1, y)] == kind && kinds[Index(x-2, y)] == kind {
					continue
				}
				if y >= 2 && kinds[Index(x, y-1)] == kind && kinds[Index(x, y-2)] == kind {
					continue
				}
				allowed = append(allowed, kind)
			}

			if len(allowed) == 0 {
				kinds[Index(x, y)] = Kind(r.rng.Intn(categories))
				continue
			}
			kinds[Index(x, y)] = allowed[r.rng.Intn(len(allowed))]
		}
	}
	return kinds
}
