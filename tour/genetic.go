// Package tour - genetic-algorithm tour refinement.
//
// Genetic evolves a population of candidate orders (open permutations of
// {0..n-1}; the closing edge is implicit) for a fixed number of generations:
//
//	evaluate fitness → sort descending → track best-ever → reproduce
//
// Reproduction per generation:
//   - Elitism: the top PopulationSize/10 individuals (integer floor) survive
//     verbatim, so the population's best fitness never regresses.
//   - Parents: drawn independently and uniformly from the top half of the
//     sorted population; a parent may mate with itself.
//   - Ordered crossover: a random slice of parent A is copied in place, the
//     rest is filled from parent B's relative order, wrapping modulo n. A
//     bitmap backs the membership test, keeping the fill O(n).
//   - Mutation: with probability MutationRate per child (not per gene), one
//     random pair of positions is swapped.
//
// The reported result is the best individual ever observed — the final
// generation may regress relative to an earlier peak, the best-ever cannot.
// There is no early-stopping criterion: exactly Generations iterations run.
//
// Design:
//   - Deterministic for a fixed Seed; seed==0 selects a fixed default stream.
//   - Strict sentinel errors only; no panics on user input.
//   - Fitness is 1/cycle-length, or 0 for a zero-length cycle (all cities at
//     identical coordinates), so no division fault is reachable.
//
// Complexity: O(Generations × PopulationSize × n) time,
// O(PopulationSize × n) space, plus O(n²) for prefetched weights.
package tour

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/geotour/matrix"
)

// Genetic runs the genetic solver over dist with the supplied options.
// Zero-valued options fall back to the documented defaults.
//
// Errors: ErrNoCities (n == 0), ErrBadOptions, matrix.ErrNonSquare,
// ErrDimensionMismatch / ErrNegativeDistance on malformed entries.
//
// The returned tour is a valid permutation-plus-closure for every n ≥ 1;
// unlike the greedy solver there is no start parameter — the cycle begins at
// whichever city the best individual happens to lead with.
func Genetic(dist matrix.Matrix, opts GeneticOptions) (Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}

	n, err := orderOf(dist)
	if err != nil {
		return Result{}, err
	}

	w, err := prefetchWeights(dist, n)
	if err != nil {
		return Result{}, err
	}

	// n < 3 admits exactly one cycle; evolving a population would only ask
	// the samplers for distinct pairs that may not exist. Short-circuit.
	if n <= 2 {
		t := make([]int, 0, n+1)
		var i int
		for i = 0; i < n; i++ {
			t = append(t, i)
		}
		t = append(t, 0)
		steps, total := stepsFromTour(w, n, t)

		return Result{Tour: t, Steps: steps, TotalDistance: Round2(total)}, nil
	}

	var (
		rng     = rngFromSeed(opts.Seed)
		popSize = opts.PopulationSize
		half    = popSize / 2
		elite   = popSize / 10
	)
	if half < 1 {
		half = 1
	}

	// Initial population: independent uniform random permutations.
	population := make([][]int, popSize)
	var i int
	for i = 0; i < popSize; i++ {
		population[i] = permRange(n, rng)
	}

	var (
		scores      = make([]float64, popSize)
		order       = make([]int, popSize)
		next        = make([][]int, 0, popSize)
		best        []int
		bestFitness float64
		gen         int
		child       []int
	)
	for gen = 0; gen < opts.Generations; gen++ {
		// Evaluate and rank the whole generation, best first. The stable
		// sort keeps equal-fitness individuals in insertion order so runs
		// are reproducible.
		for i = 0; i < popSize; i++ {
			scores[i] = fitnessOf(w, n, population[i])
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})

		// Best-ever tracking across generations. The nil check seeds the
		// tracker even when every fitness is 0 (all cities co-located).
		if best == nil || scores[order[0]] > bestFitness {
			bestFitness = scores[order[0]]
			best = append(best[:0], population[order[0]]...)
		}

		// Elitism: top slice survives verbatim.
		next = next[:0]
		for i = 0; i < elite; i++ {
			next = append(next, copyPerm(population[order[i]]))
		}

		// Remaining offspring by crossover + mutation over top-half parents.
		for len(next) < popSize {
			child, err = orderedCrossover(
				population[order[rng.Intn(half)]],
				population[order[rng.Intn(half)]],
				n, rng,
			)
			if err != nil {
				return Result{}, err
			}
			if err = mutateSwap(child, opts.MutationRate, rng); err != nil {
				return Result{}, err
			}
			next = append(next, child)
		}

		population, next = next, population[:0]
	}

	// Close the best-ever individual into a tour and assemble the result.
	t := make([]int, 0, n+1)
	t = append(t, best...)
	t = append(t, best[0])
	steps, total := stepsFromTour(w, n, t)

	return Result{Tour: t, Steps: steps, TotalDistance: Round2(total)}, nil
}

// fitnessOf scores an open permutation: the inverse of its closed-cycle
// length, or 0 when the cycle has zero length. Higher is better.
//
// Complexity: O(n).
func fitnessOf(w []float64, n int, perm []int) float64 {
	length := cycleLength(w, n, perm)
	if length > 0 {
		return 1 / length
	}

	return 0
}

// copyPerm returns an independent copy of perm.
// Complexity: O(n).
func copyPerm(perm []int) []int {
	out := make([]int, len(perm))
	copy(out, perm)

	return out
}

// orderedCrossover combines two parent permutations into a child:
// parent1's slice [cutA,cutB) is copied at the same positions, then the
// remaining positions are filled with parent2's cities in their relative
// order, starting at cutB and wrapping modulo n. The placed bitmap makes
// the skip-duplicates fill a single O(n) pass.
//
// The child is always a valid permutation because parent2 is one and every
// city is placed exactly once.
//
// Complexity: O(n) time and space.
func orderedCrossover(parent1, parent2 []int, n int, rng *rand.Rand) ([]int, error) {
	cutA, cutB, err := twoDistinct(n, rng)
	if err != nil {
		return nil, err
	}

	var (
		child  = make([]int, n)
		placed = make([]bool, n)
		i      int
	)
	for i = cutA; i < cutB; i++ {
		child[i] = parent1[i]
		placed[parent1[i]] = true
	}

	var (
		pos  = cutB
		city int
	)
	for _, city = range parent2 {
		if placed[city] {
			continue
		}
		if pos >= n {
			pos = 0
		}
		// pos never re-enters [cutA,cutB): exactly n-(cutB-cutA) cities
		// remain unplaced, which is exactly the number of slots from cutB
		// forward (wrapping) up to cutA.
		child[pos] = city
		placed[city] = true
		pos++
	}

	return child, nil
}

// mutateSwap applies at most one swap mutation to perm: with probability
// rate, two distinct positions are exchanged. The single-swap-per-child
// policy is deliberately weak mutation pressure.
//
// Complexity: O(1).
func mutateSwap(perm []int, rate float64, rng *rand.Rand) error {
	if rng.Float64() >= rate {
		return nil
	}

	i, j, err := twoDistinct(len(perm), rng)
	if err != nil {
		return err
	}
	perm[i], perm[j] = perm[j], perm[i]

	return nil
}
