/*
 * reaction.go, part of goTermod.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goTermod is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gotermod/formula"
)

//Reaction is a chemical reaction between substances. Reactants have negative
//coefficients and products positive ones.
type Reaction struct {
	substances []*Substance
	coeffs     map[string]float64
	validity   map[string]bool
	balanced   bool
	orders     map[string]float64
	elements   []string
	factor     float64 //Arrhenius pre-exponential factor
	energy     float64 //activation energy, J/mol
	cond       *Conditions
	cfg        *Config
	log        logrus.FieldLogger
}

//NewReaction builds a reaction from its terms, and balances it. Only the signs of the
//given coefficients are used by the balance. Substances not found in the data are
//kept, but make the reaction not Valid. A term with a formula that can't be parsed gives
//a *formula.SyntaxError and a nil reaction. If the balance fails, the reaction is
//returned together with a *BalanceError, and it is not Valid.
func NewReaction(terms []formula.Term, cond *Conditions, data *Data, cfg *Config) (*Reaction, error) {
	cfg = cfg.orDefault()
	R := &Reaction{
		coeffs:   make(map[string]float64, len(terms)),
		validity: make(map[string]bool, len(terms)),
		orders:   make(map[string]float64, len(terms)),
		factor:   1,
		cond:     cond.orStandard(),
		cfg:      cfg,
	}
	elems := make(map[string]bool)
	for _, t := range terms {
		S, err := NewSubstance(t.Formula, t.Phase, R.cond, data, cfg)
		if err != nil {
			return nil, errDecorate(err, "NewReaction")
		}
		S.Coeff = t.Coeff
		R.substances = append(R.substances, S)
		R.validity[S.Formula()] = S.Valid()
		R.coeffs[S.Formula()] = S.Coeff
		for k := range S.comp {
			elems[k] = true
		}
	}
	for k := range elems {
		R.elements = append(R.elements, k)
	}
	sort.Strings(R.elements)
	R.log = cfg.Log.WithField("reaction", R.formulaList())
	R.resetOrders()
	if err := R.Balance(); err != nil {
		R.log.WithError(err).Warn("Reaction not balanced")
		return R, errDecorate(err, "NewReaction")
	}
	return R, nil
}

//ParseReaction builds a reaction from a string such as "2H2+O2=2H2O(g)".
//See formula.ParseReaction for the syntax.
func ParseReaction(reaction string, cond *Conditions, data *Data, cfg *Config) (*Reaction, error) {
	terms, err := formula.ParseReaction(reaction)
	if err != nil {
		return nil, errDecorate(err, "ParseReaction")
	}
	R, err := NewReaction(terms, cond, data, cfg)
	if err != nil {
		return R, errDecorate(err, "ParseReaction")
	}
	return R, nil
}

func (R *Reaction) formulaList() string {
	f := make([]string, len(R.substances))
	for i, s := range R.substances {
		f[i] = s.Formula()
	}
	return strings.Join(f, ",")
}

//Balance obtains the stoichiometric coefficients from the element balance. The
//last substance is the reference, with a coefficient of magnitude 1. The signs of
//the previous coefficients are kept. The reaction orders are reset to the new
//coefficients.
func (R *Reaction) Balance() error {
	R.balanced = false
	ns := len(R.substances)
	ne := len(R.elements)
	forms := R.Formulas()
	if ns < 2 {
		return newBalanceError(forms, TooFewSubstances, nil)
	}
	if ne == 0 {
		return newBalanceError(forms, NoElements, nil)
	}
	//element x substance matrix, the last column goes to the right side.
	A := mat.NewDense(ne, ns-1, nil)
	b := mat.NewDense(ne, 1, nil)
	for j, s := range R.substances {
		for i, e := range R.elements {
			v := s.comp[e]
			if j == ns-1 {
				b.Set(i, 0, -v)
			} else {
				A.Set(i, j, v)
			}
		}
	}
	var x mat.Dense
	if err := x.Solve(A, b); err != nil {
		//an ill-conditioned solution can still be good, the residual will tell.
		if _, ok := err.(mat.Condition); !ok {
			return newBalanceError(forms, Unsolvable, err)
		}
	}
	coeffs := make([]float64, ns)
	for j, s := range R.substances {
		c := 1.0
		if j < ns-1 {
			//solver noise would show up in the equations.
			c = round1(math.Abs(x.At(j, 0)), 9)
		}
		if s.Coeff < 0 {
			c = -c
		}
		coeffs[j] = c
	}
	if !R.conserves(coeffs) {
		return newBalanceError(forms, NotBalanced, nil)
	}
	for j, s := range R.substances {
		s.Coeff = coeffs[j]
		R.coeffs[s.Formula()] = coeffs[j]
	}
	R.balanced = true
	R.resetOrders()
	return nil
}

//conserves returns true if the coefficients c conserve every element.
func (R *Reaction) conserves(c []float64) bool {
	for _, e := range R.elements {
		var sum, scale float64
		for j, s := range R.substances {
			v := c[j] * s.comp[e]
			sum += v
			scale = math.Max(scale, math.Abs(v))
		}
		if !(math.Abs(sum) <= 1e-6*math.Max(1, scale)) {
			return false
		}
	}
	return true
}

func (R *Reaction) resetOrders() {
	for _, s := range R.substances {
		R.orders[s.Formula()] = s.Coeff
	}
}

//Valid returns true if every substance was found in the data and the
//reaction is balanced.
func (R *Reaction) Valid() bool {
	if !R.balanced {
		return false
	}
	for _, v := range R.validity {
		if !v {
			return false
		}
	}
	return true
}

//Validity returns, for each formula, whether the substance was found in the data.
func (R *Reaction) Validity() map[string]bool {
	ret := make(map[string]bool, len(R.validity))
	for k, v := range R.validity {
		ret[k] = v
	}
	return ret
}

//Coeffs returns a map from each formula to its coefficient.
func (R *Reaction) Coeffs() map[string]float64 {
	ret := make(map[string]float64, len(R.coeffs))
	for k, v := range R.coeffs {
		ret[k] = v
	}
	return ret
}

//SetCoeffs sets the coefficients of the substances. Substances absent
//from c get a coefficient of 1.
func (R *Reaction) SetCoeffs(c map[string]float64) {
	for _, s := range R.substances {
		v, ok := c[s.Formula()]
		if !ok {
			v = 1
		}
		s.Coeff = v
		R.coeffs[s.Formula()] = v
	}
}

//Scale multiplies every coefficient by f. It returns false, and does
//nothing, if f is zero.
func (R *Reaction) Scale(f float64) bool {
	if f == 0 {
		R.log.Warn("Reaction can't be scaled by zero")
		return false
	}
	for _, s := range R.substances {
		s.Coeff *= f
		R.coeffs[s.Formula()] = s.Coeff
	}
	return true
}

//Elements returns the sorted symbols of the elements in the reaction.
func (R *Reaction) Elements() []string {
	return append([]string(nil), R.elements...)
}

//Formulas returns the formulas of the substances, in order.
func (R *Reaction) Formulas() []string {
	ret := make([]string, len(R.substances))
	for i, s := range R.substances {
		ret[i] = s.Formula()
	}
	return ret
}

//Substances returns the substances of the reaction. They are shared
//with the reaction, not copies, and the reaction calculations always
//use the conditions of the reaction for them.
func (R *Reaction) Substances() []*Substance {
	return append([]*Substance(nil), R.substances...)
}

//Conditions returns the conditions shared by the substances.
func (R *Reaction) Conditions() *Conditions {
	return R.cond
}

//SetConditions sets the conditions for every substance of the reaction.
func (R *Reaction) SetConditions(c *Conditions) {
	R.cond = c.orStandard()
	for _, s := range R.substances {
		s.SetConditions(R.cond)
	}
}

//withConditions runs f with the reaction under the conditions c. The
//previous conditions are restored on return, even if f panics.
func (R *Reaction) withConditions(c *Conditions, f func()) {
	old := R.cond
	R.SetConditions(c)
	defer R.SetConditions(old)
	f()
}

//rawSum adds up prop for every substance, without rounding. prop values
//are already multiplied by the coefficients. Substances whose conditions
//were changed from outside are set back to those of the reaction.
func (R *Reaction) rawSum(prop func(*Substance) []float64) []float64 {
	ret := make([]float64, R.cond.Len())
	for _, s := range R.substances {
		if s.Conditions() != R.cond {
			R.log.WithField("formula", s.Formula()).Debug("Substance conditions reset to those of the reaction")
			s.SetConditions(R.cond)
		}
		floats.Add(ret, prop(s))
	}
	return ret
}

//Enthalpy returns the enthalpy of the reaction, in kJ, at each temperature.
func (R *Reaction) Enthalpy() []float64 {
	return roundTo(R.rawSum((*Substance).enthalpy), R.cfg.Digits)
}

//Entropy returns the entropy of the reaction, in kJ/K.
func (R *Reaction) Entropy() []float64 {
	return roundTo(R.rawSum((*Substance).entropy), R.cfg.Digits)
}

//Gibbs returns the Gibbs energy of the reaction, in kJ.
func (R *Reaction) Gibbs() []float64 {
	return roundTo(R.rawSum((*Substance).gibbs), R.cfg.Digits)
}

//Helmholtz returns the Helmholtz energy of the reaction.
func (R *Reaction) Helmholtz() []float64 {
	return roundTo(R.rawSum((*Substance).helmholtz), R.cfg.Digits)
}

//LnK returns the natural logarithm of the equilibrium constant, -1000*G/(R*T).
func (R *Reaction) LnK() []float64 {
	G := R.Gibbs()
	for i, t := range R.cond.Kelvin() {
		G[i] = -KJ2J * G[i] / (R.cfg.R * t)
	}
	return roundTo(G, R.cfg.Digits)
}

//K returns the equilibrium constant, exp(-1000*G/(R*T)).
func (R *Reaction) K() []float64 {
	G := R.Gibbs()
	for i, t := range R.cond.Kelvin() {
		G[i] = math.Exp(-KJ2J * G[i] / (R.cfg.R * t))
	}
	return roundTo(G, R.cfg.Digits)
}

//OnsetKind classifies the temperatures at which a reaction can proceed.
type OnsetKind int

const (
	Undetermined OnsetKind = iota
	Never                  //dH>0, dS<0
	Always                 //dH<0, dS>0
	Below                  //both negative, the reaction proceeds below T
	Above                  //both positive, the reaction proceeds above T
)

//Onset is the result of the onset temperature analysis. H and S are the
//standard enthalpy (kJ) and entropy (kJ/K) of the reaction.
type Onset struct {
	Kind OnsetKind
	T    float64
	H, S float64
}

func (O Onset) String() string {
	switch O.Kind {
	case Never:
		return "the reaction can't proceed at any T>0 K"
	case Always:
		return "the reaction can proceed at any T>0 K"
	case Below:
		return fmt.Sprintf("T<%g K", O.T)
	case Above:
		return fmt.Sprintf("T>%g K", O.T)
	}
	return "undetermined"
}

//Onset returns the temperature range where the reaction can proceed, from
//the signs of its enthalpy and entropy at standard conditions. The
//conditions of the reaction are not changed.
func (R *Reaction) Onset() Onset {
	var H, S float64
	R.withConditions(StandardConditions(), func() {
		H = R.rawSum((*Substance).enthalpy)[0]
		S = R.rawSum((*Substance).entropy)[0]
	})
	O := Onset{H: round1(H, R.cfg.Digits), S: S}
	switch {
	case H > 0 && S < 0:
		O.Kind = Never
	case H < 0 && S > 0:
		O.Kind = Always
	case H < 0 && S < 0:
		O.Kind = Below
		O.T = round1(H/S, R.cfg.Digits)
	case H > 0 && S > 0:
		O.Kind = Above
		O.T = round1(H/S, R.cfg.Digits)
	}
	return O
}

//Equation returns the reaction as a string, with its heat and onset,
//such as "2H2(g)+O2(g) = 2H2O(g)+483.6 kJ (T<5456.2 K)". The heat is
//-H at the first temperature value.
func (R *Reaction) Equation() string {
	left := make([]string, 0, len(R.substances))
	right := make([]string, 0, len(R.substances))
	for _, s := range R.substances {
		t := coeffString(s.Coeff) + s.String()
		if s.Coeff > 0 {
			right = append(right, t)
		} else {
			left = append(left, t)
		}
	}
	Q := -R.Enthalpy()[0]
	return fmt.Sprintf("%s = %s+%g kJ (%s)", strings.Join(left, "+"), strings.Join(right, "+"), Q, R.Onset())
}

//SetMoles sets the amounts of the substances with formulas in m.
//Other formulas are ignored.
func (R *Reaction) SetMoles(m map[string]float64) {
	for _, s := range R.substances {
		if v, ok := m[s.Formula()]; ok {
			s.Moles = v
		}
	}
}

//Moles returns the amount of each substance.
func (R *Reaction) Moles() map[string]float64 {
	ret := make(map[string]float64, len(R.substances))
	for _, s := range R.substances {
		ret[s.Formula()] = s.Moles
	}
	return ret
}

//MaxExtent returns the largest extent the reaction can reach with the current
//amounts, the minimum of -moles/coefficient over the reactants. It is +Inf for
//a reaction without reactants.
func (R *Reaction) MaxExtent() float64 {
	ret := math.Inf(1)
	for _, s := range R.substances {
		if s.Coeff < 0 {
			ret = math.Min(ret, -s.Moles/s.Coeff)
		}
	}
	return ret
}

//MinExtent returns the most negative extent the reaction can reach with the
//current amounts, running backwards until a product is used up. It is the
//maximum of -moles/coefficient over the products, and -Inf for a reaction
//without products.
func (R *Reaction) MinExtent() float64 {
	ret := math.Inf(-1)
	for _, s := range R.substances {
		if s.Coeff > 0 {
			ret = math.Max(ret, -s.Moles/s.Coeff)
		}
	}
	return ret
}

//clampExtent limits x to the extents that leave no negative amounts.
func (R *Reaction) clampExtent(x float64) float64 {
	return math.Max(math.Min(x, R.MaxExtent()), R.MinExtent())
}

//Advance changes the amounts of the substances as the reaction proceeds by the
//extent x, clamped between MinExtent and MaxExtent. It returns the new amounts.
func (R *Reaction) Advance(x float64) map[string]float64 {
	x = R.clampExtent(x)
	for _, s := range R.substances {
		s.Moles += s.Coeff * x
	}
	return R.Moles()
}
