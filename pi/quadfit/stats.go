/*
DESCRIPTION
  stats.go provides goodness of fit measures for fitted coefficients.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

package quadfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises how well coefficients describe a set of samples.
type Stats struct {
	N    int     // Number of samples.
	SSR  float64 // Sum of squared residuals.
	RMSE float64 // Root mean squared error.
	R2   float64 // Coefficient of determination; NaN when y is constant.
}

// String returns s on a single line.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d ssr=%g rmse=%g r2=%g", s.N, s.SSR, s.RMSE, s.R2)
}

// Residuals returns y - f(x) for each sample, in sample order.
func (c Coefficients) Residuals(s Samples) []float64 {
	r := make([]float64, len(s))
	for i, v := range s {
		r[i] = v.Y - c.Eval(v.X)
	}
	return r
}

// SSR returns the sum of squared residuals of c over s.
func (c Coefficients) SSR(s Samples) float64 {
	r := c.Residuals(s)
	return floats.Dot(r, r)
}

// Stats returns goodness of fit measures of c over s.
func (c Coefficients) Stats(s Samples) Stats {
	if len(s) == 0 {
		return Stats{RMSE: math.NaN(), R2: math.NaN()}
	}
	xs, ys := s.XY()
	est := c.EvalAll(xs)
	ssr := c.SSR(s)
	return Stats{
		N:    len(s),
		SSR:  ssr,
		RMSE: floats.Distance(est, ys, 2) / math.Sqrt(float64(len(s))),
		R2:   stat.RSquaredFrom(est, ys, nil),
	}
}
