/*
DESCRIPTION
  fit.go provides least squares fitting of a quadratic to a set of samples.

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

// Package quadfit fits the model y = θ0 + θ1·x + θ2·x² to (x, y) samples by
// ordinary least squares and evaluates the fitted model.
package quadfit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// degree is the degree of the fitted polynomial.
const degree = 2

// ErrNoSamples is returned by Fit when given no samples.
var ErrNoSamples = errors.New("no samples to fit")

// Sample is a single (x, y) observation.
type Sample struct {
	X, Y float64
}

// Samples is an ordered sequence of observations.
type Samples []Sample

// XY splits the samples into their x and y columns.
func (s Samples) XY() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, v := range s {
		xs[i], ys[i] = v.X, v.Y
	}
	return xs, ys
}

// Coefficients holds the fitted parameters (θ0, θ1, θ2) of the intercept,
// linear and quadratic terms respectively.
type Coefficients [degree + 1]float64

// Eval returns θ0 + θ1·x + θ2·x².
func (c Coefficients) Eval(x float64) float64 {
	// Horner's method.
	y := 0.0
	for j := degree; j >= 0; j-- {
		y = y*x + c[j]
	}
	return y
}

// EvalAll evaluates the model at each of xs, preserving order.
func (c Coefficients) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c.Eval(x)
	}
	return ys
}

// String prints the coefficients as a column, lowest order first.
func (c Coefficients) String() string {
	var sb strings.Builder
	for i, v := range c {
		if i != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}

// Fit returns the coefficients minimising the sum of squared residuals of the
// model over s. The system is solved by singular value decomposition of the
// design matrix; if the design matrix is rank deficient, for example when
// there are fewer than three distinct x values, the minimum-norm solution is
// returned.
func Fit(s Samples) (Coefficients, error) {
	var c Coefficients
	if len(s) == 0 {
		return c, ErrNoSamples
	}

	xs, ys := s.XY()
	a := vandermonde(xs, degree)
	b := mat.NewVecDense(len(ys), ys)

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return c, errors.New("could not factorize design matrix")
	}

	rank := svd.Rank(rcond(len(s)))
	if rank < 1 {
		return c, fmt.Errorf("could not fit degenerate design matrix: rank %d", rank)
	}

	theta := mat.NewVecDense(degree+1, nil)
	svd.SolveVecTo(theta, b, rank)
	for j := range c {
		c[j] = theta.AtVec(j)
		if math.IsNaN(c[j]) || math.IsInf(c[j], 0) {
			return Coefficients{}, fmt.Errorf("could not fit samples: non-finite coefficient %d", j)
		}
	}
	return c, nil
}

// rcond returns the relative cutoff below which singular values are treated
// as zero for an n row design matrix.
func rcond(n int) float64 {
	const eps = 0x1p-52
	return eps * math.Max(float64(n), degree+1)
}

// vandermonde calculates the vandermonde matrix for set a and the given
// degree, with column j holding a[i]^j.
func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
