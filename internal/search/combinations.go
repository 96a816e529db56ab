package search

// Combinations walks every k-element subset of {0..n-1} in lexicographic
// index order. It is lazy: each call to Next advances the index tuple in
// place, so nothing is materialised up front.
//
//	c := NewCombinations(8, 5)
//	for c.Next() {
//		idx := c.Indices()
//	}
type Combinations struct {
	n, k    int
	indices []int
	started bool
	done    bool
}

// NewCombinations returns a cursor over C(n, k). When k > n or k < 0 the
// cursor yields nothing; k == 0 yields the empty subset once.
func NewCombinations(n, k int) *Combinations {
	c := &Combinations{n: n, k: k}
	c.Reset()
	return c
}

// Reset rewinds the cursor to before the first combination.
func (c *Combinations) Reset() {
	c.started = false
	c.done = c.k < 0 || c.k > c.n
	if c.done {
		c.indices = nil
		return
	}
	c.indices = make([]int, c.k)
	for i := range c.indices {
		c.indices[i] = i
	}
}

// Next advances to the next combination and reports whether there is one.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}

	for i := c.k - 1; i >= 0; i-- {
		if c.indices[i] != i+c.n-c.k {
			c.indices[i]++
			for j := i + 1; j < c.k; j++ {
				c.indices[j] = c.indices[j-1] + 1
			}
			return true
		}
	}
	c.done = true
	return false
}

// Indices returns the current combination. The slice is reused by Next;
// copy it to keep it.
func (c *Combinations) Indices() []int {
	return c.indices
}

// Count returns the binomial coefficient C(n, k).
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
