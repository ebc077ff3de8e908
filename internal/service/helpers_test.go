package service

// seqRand replays vals in order, wrapping around. Each value is reduced
// modulo n so it always satisfies the IntN contract.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func constRand(v int) *seqRand {
	return &seqRand{vals: []int{v}}
}
