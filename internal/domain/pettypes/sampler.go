package pettypes

import "math/rand/v2"

// Sampler genera estadísticas aleatorias de tipos de mascota.
type Sampler struct {
	intn func(n int) int
}

// NewSampler usa intn como fuente (debe devolver [0, n)). Con nil usa math/rand/v2,
// que es seguro para uso concurrente.
func NewSampler(intn func(n int) int) *Sampler {
	if intn == nil {
		intn = rand.IntN
	}
	return &Sampler{intn: intn}
}

// Sample devuelve SampleSize sorteos independientes.
// Qty = Amount - r, con r en [0, Amount); con Amount 0, Qty es 0.
func (s *Sampler) Sample() []PetType {
	out := make([]PetType, 0, SampleSize)
	for i := 0; i < SampleSize; i++ {
		amount := s.intn(MaxAmount)

		var r int
		if amount > 0 {
			r = s.intn(amount)
		}

		out = append(out, PetType{
			Type:   Types[s.intn(len(Types))],
			Amount: amount,
			Qty:    amount - r,
		})
	}
	return out
}
