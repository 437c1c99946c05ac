package calculation

import "math/rand/v2"

// TrialSource returns the random stream owned by a single trial.
//
// The stream is a pure function of the run seed and the trial index, so the
// multiset of terminal values of a run never depends on how trials are spread
// over workers or in which order they are scheduled. Sources are not safe for
// concurrent use and must stay with the goroutine that runs the trial.
func TrialSource(seed uint64, trial int) rand.Source {
	hi := splitmix64(seed ^ uint64(trial))
	return rand.NewPCG(hi, splitmix64(hi^seed))
}

// splitmix64 scrambles neighbouring inputs into unrelated 64-bit values.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
