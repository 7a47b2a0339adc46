package jssp

import "math/rand"

// RandomInstance builds a job-shop instance where every job visits every
// machine exactly once, in an order shuffled per job. Duration bounds are
// normalized rather than rejected: minDur is raised to at least 1.0 and
// maxDur to at least minDur+0.1, so the sampling interval is never
// degenerate even for inverted or non-positive inputs.
func RandomInstance(jobs, machines int, minDur, maxDur float64, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("random source must not be nil")
	}
	if jobs <= 0 || machines <= 0 {
		panic("jobs and machines must be > 0")
	}

	effMin := minDur
	if effMin < 1.0 {
		effMin = 1.0
	}
	effMax := maxDur
	if effMax < effMin+0.1 {
		effMax = effMin + 0.1
	}

	out := make([]Job, jobs)
	perm := make([]int, machines)
	for jobID := 0; jobID < jobs; jobID++ {
		initPermutation(perm)
		shufflePermutation(perm, rng)

		ops := make([]Operation, machines)
		for i, machine := range perm {
			ops[i] = Operation{
				JobID:    jobID,
				Index:    i,
				Machine:  machine,
				Duration: effMin + rng.Float64()*(effMax-effMin),
			}
		}
		out[jobID] = Job{ID: jobID, Operations: ops}
	}

	inst, err := NewInstance(out, machines)
	if err != nil {
		panic(err)
	}
	return inst
}

// initPermutation fills p with [0, 1, 2, ..., n-1].
func initPermutation(p []int) {
	for i := range p {
		p[i] = i
	}
}

// shufflePermutation performs an unbiased in-place Fisher-Yates shuffle.
func shufflePermutation(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}
