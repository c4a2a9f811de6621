package cascade

import "fmt"

// IsPrime tests n by trial division, skipping multiples of 2 and 3.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 { // candidates are 6k-1 and 6k+1
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// LargestPrimeAtMost returns the greatest prime p <= n.
// It returns ErrNoPrime for n < 2.
func LargestPrimeAtMost(n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("largest prime <= %d: %w", n, ErrNoPrime)
	}
	if n > 3 && n%2 == 0 {
		n--
	}
	for ; n >= 2; n-- {
		if IsPrime(n) {
			return n, nil
		}
	}
	return 0, ErrNoPrime // unreachable, 2 is prime
}

// PlanCapacities computes the capacities of the layers of a table.
//
// The first layer gets the largest prime <= capacity. Every following layer
// shrinks the previous target by factor shrink and takes the largest prime at
// or below it, but always strictly below the previous layer's capacity.
func PlanCapacities(layers int, capacity int, shrink float64) ([]int, error) {
	if layers < 1 {
		return nil, configError("layers", layers, "need at least one layer", nil)
	}
	if !(shrink > 0 && shrink < 1) {
		return nil, configError("shrink", shrink, "factor must lie in (0,1)", nil)
	}
	if capacity < 2 {
		return nil, configError("capacity", capacity, "initial capacity must be at least 2", nil)
	}
	if layers > capacity-1 {
		// capacities decrease strictly from <= capacity down to >= 2
		return nil, configError("layers", layers,
			fmt.Sprintf("at most %d layers fit below capacity %d", capacity-1, capacity), ErrNoPrime)
	}
	caps := make([]int, 0, layers)
	target := capacity
	for i := range layers {
		bound := target
		if i > 0 {
			target = int(float64(target) * shrink)
			bound = min(target, caps[i-1]-1)
		}
		p, err := LargestPrimeAtMost(bound)
		if err != nil {
			return nil, configError("layers", layers,
				fmt.Sprintf("cannot size layer %d (target %d)", i, bound), err)
		}
		caps = append(caps, p)
	}
	return caps, nil
}
