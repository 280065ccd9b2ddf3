// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"
	"math/rand/v2"
)

// SampleSeeds draws n seeds from gen using a PCG stream keyed by seed.
// gen receives the generator and the seed's position. The same seed and gen
// always yield the same seeds, identified "seed-0", "seed-1", ...
func SampleSeeds[S any](n int, seed uint64, gen func(rng *rand.Rand, i int) S) []Seed[S] {
	rng := rand.New(rand.NewPCG(seed, 0))
	out := make([]Seed[S], n)
	for i := range out {
		out[i] = Seed[S]{ID: fmt.Sprintf("seed-%d", i), Value: gen(rng, i)}
	}
	return out
}
