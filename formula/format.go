/*
 * format.go, part of goTermod.
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

package formula

import (
	"strconv"
	"strings"
)

//Style selects the markup used to render a formula.
type Style int

const (
	TXT Style = iota
	HTML
	TEX
)

//SubOpen and SubClose return the markers that enclose a subscript in the
//given style. TXT has none.
func (S Style) SubOpen() string {
	switch S {
	case HTML:
		return "<sub>"
	case TEX:
		return "_{"
	}
	return ""
}

func (S Style) SubClose() string {
	switch S {
	case HTML:
		return "</sub>"
	case TEX:
		return "}"
	}
	return ""
}

//SupOpen and SupClose do the same for superscripts.
func (S Style) SupOpen() string {
	switch S {
	case HTML:
		return "<sup>"
	case TEX:
		return "^{"
	}
	return ""
}

func (S Style) SupClose() string {
	switch S {
	case HTML:
		return "</sup>"
	case TEX:
		return "}"
	}
	return ""
}

//Format returns the formula f with its indexes as subscripts in the
//given style. The TXT style just trims spaces.
func Format(f string, style Style) string {
	f = strings.TrimSpace(f)
	if style == TXT {
		return f
	}
	var b strings.Builder
	in := false
	runes := []rune(f)
	for i, r := range runes {
		digit := isDigit(r) || (in && r == '.' && i+1 < len(runes) && isDigit(runes[i+1]))
		if digit && !in {
			b.WriteString(style.SubOpen())
			in = true
		} else if !digit && in {
			b.WriteString(style.SubClose())
			in = false
		}
		b.WriteRune(r)
	}
	if in {
		b.WriteString(style.SubClose())
	}
	return b.String()
}

//Term is one substance of a reaction string, as returned by ParseReaction.
type Term struct {
	Coeff   float64
	Formula string
	Phase   string //empty if not given
}

//ParseReaction reads a reaction written as "2H2+O2=2H2O(g)". Terms on the
//left side get negative coefficients, a missing coefficient is 1. Commas
//are accepted as decimal separators. A trailing "(x)" with a lowercase
//x is taken as the phase of the term.
func ParseReaction(reaction string) ([]Term, error) {
	if strings.Count(reaction, "=") != 1 {
		return nil, &SyntaxError{formula: reaction, message: NoEquals, deco: []string{"ParseReaction"}}
	}
	clean := strings.Replace(reaction, ",", ".", -1)
	clean = strings.Join(strings.Fields(clean), "")
	sides := strings.Split(clean, "=")
	ret := make([]Term, 0, 4)
	for i, side := range sides {
		sign := -1.0
		if i == 1 {
			sign = 1.0
		}
		for _, t := range strings.Split(side, "+") {
			term, err := parseTerm(t, reaction)
			if err != nil {
				return nil, err
			}
			term.Coeff *= sign
			ret = append(ret, term)
		}
	}
	return ret, nil
}

func parseTerm(t, reaction string) (Term, error) {
	var ret Term
	if t == "" {
		return ret, &SyntaxError{formula: reaction, message: EmptyTerm, deco: []string{"ParseReaction"}}
	}
	k := strings.IndexFunc(t, func(r rune) bool {
		return isUpper(r) || r == '(' || r == '['
	})
	if k < 0 {
		return ret, &SyntaxError{formula: reaction, message: EmptyTerm, deco: []string{"ParseReaction"}}
	}
	ret.Coeff = 1
	if k > 0 {
		c, err := strconv.ParseFloat(t[:k], 64)
		if err != nil {
			return ret, &SyntaxError{formula: reaction, message: BadCoefficient, deco: []string{"ParseReaction"}}
		}
		ret.Coeff = c
	}
	f := t[k:]
	if strings.HasSuffix(f, ")") {
		if p := strings.LastIndex(f, "("); p > 0 {
			ph := f[p+1 : len(f)-1]
			if ph != "" && strings.IndexFunc(ph, func(r rune) bool { return !isLower(r) }) < 0 {
				ret.Phase = ph
				f = f[:p]
			}
		}
	}
	ret.Formula = f
	return ret, nil
}
