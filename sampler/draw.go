// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampler

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMaxRetries is the retry budget for bounded draws before the
// bounds are declared unsatisfiable.
const DefaultMaxRetries = 1000

// drawer holds the random state and global bounds shared by all draws of
// one generation run.
type drawer struct {
	rng      *rand.Rand
	min, max float64
	retries  int
}

func newDrawer(seed uint64, min, max float64, retries int) *drawer {
	if retries <= 0 {
		retries = DefaultMaxRetries
	}
	return &drawer{
		rng:     rand.New(rand.NewSource(seed)),
		min:     min,
		max:     max,
		retries: retries,
	}
}

// normal draws from N(avg, sd) rejecting values outside [min, max]. A zero
// sd yields exactly avg regardless of bounds. The retry budget bounds the
// rejection loop.
func (d *drawer) normal(avg, sd float64) (float64, error) {
	if sd == 0 {
		return avg, nil
	}
	n := distuv.Normal{Mu: avg, Sigma: sd, Src: d.rng}
	for i := 0; i < d.retries; i++ {
		v := n.Rand()
		if v >= d.min && v <= d.max {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: no draw from %v/%v within [%v,%v] after %d tries",
		ErrBoundsUnsatisfiable, avg, sd, d.min, d.max, d.retries)
}

// scalar resolves a Constant or Normal spec to a float.
func (d *drawer) scalar(sp Spec) (float64, error) {
	switch sp := sp.(type) {
	case Constant:
		return float64(sp), nil
	case Normal:
		return d.normal(sp.Avg, sp.SD)
	}
	panic(fmt.Sprintf("sampler: non-scalar spec %T in draw", sp))
}

// intScalar resolves a scalar spec, rounded to an integer.
func (d *drawer) intScalar(sp Spec) (int, error) {
	v, err := d.scalar(sp)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}

// pick returns a uniformly chosen alternative.
func (d *drawer) pick(alts []string) string {
	return alts[d.rng.Intn(len(alts))]
}

// keep reports whether a candidate survives sampling at probability p.
func (d *drawer) keep(p float64) bool {
	if p >= 1 {
		return true
	}
	return d.rng.Float64() < p
}

// formatValue renders a drawn value with the fixed 4 decimal places used
// throughout the output format.
func formatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
