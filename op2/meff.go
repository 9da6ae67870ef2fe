// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op2

import "github.com/cpmech/gosl/la"

// CumulativeSumByDirection transposes a modal-effective-mass-fraction
// matrix (6 directions by n-modes) and cumulatively sums along its
// rows, yielding the (n-modes, 6) running-total matrix Scenario E
// checks: each mode's row holds, per direction, the fraction of
// effective mass captured by every mode up to and including it. The
// final row's entries must lie in [0, 1.0] for a well-formed modal
// solution.
func CumulativeSumByDirection(m *ModalEffectiveMassTable) [][]float64 {
	nDir := len(m.Data)
	if nDir == 0 {
		return nil
	}
	nModes := len(m.Data[0])
	out := la.MatAlloc(nModes, nDir)
	for d := 0; d < nDir; d++ {
		running := 0.0
		for mode := 0; mode < nModes; mode++ {
			running += m.Data[d][mode]
			out[mode][d] = running
		}
	}
	return out
}
