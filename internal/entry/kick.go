package entry

// Rand is the random source used by kicks. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Kick perturbs the entry at random: the counter drifts by up to five in
// either direction and one row, if any, drifts by at most one.
func (e Entry) Kick(rng Rand) Widget {
	return e.kick(rng)
}

func (e Entry) kick(rng Rand) Entry {
	e = e.clone()
	e.Counter += rng.Intn(11) - 5
	if len(e.Rows) > 0 {
		row := rng.Intn(len(e.Rows))
		e.Rows[row].Value += rng.Intn(3) - 1
	}
	return e
}
