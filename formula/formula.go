/*
 * formula.go, part of goTermod.
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

//Package formula parses chemical formulas such as "Fe2(SO4)3" into
//element-count maps, and renders them as plain text, HTML or TeX.
package formula

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

//Element symbols and indexes are ASCII only.
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

//Node is either an *Element or a *Group of the formula tree.
type Node interface {
	String() string
	node()
}

//Element is a leaf of the formula tree: a symbol and its index.
type Element struct {
	Symbol string
	Count  float64
}

func (E *Element) node() {}

func (E *Element) String() string {
	return fmt.Sprintf("[%s %s]", E.Symbol, fmtIndex(E.Count))
}

//Group is a bracketed part of a formula (or the whole formula, for the root)
//with the multiplier that follows the closing bracket.
type Group struct {
	Children   []Node
	Multiplier float64
}

func (G *Group) node() {}

//String renders the nested tree, with the multiplier as the last element
//of each group, i.e. Fe2(SO4)3 gives [[Fe 2] [[S 1] [O 4] 3] 1]
func (G *Group) String() string {
	parts := make([]string, 0, len(G.Children)+1)
	for _, v := range G.Children {
		parts = append(parts, v.String())
	}
	parts = append(parts, fmtIndex(G.Multiplier))
	return "[" + strings.Join(parts, " ") + "]"
}

//Parse returns the element-count map for the formula f, with the index of
//every element multiplied by the multipliers of all its enclosing groups.
func Parse(f string) (map[string]float64, error) {
	tree, err := ParseTree(f)
	if err != nil {
		err.(*SyntaxError).Decorate("Parse")
		return nil, err
	}
	return Flatten(tree), nil
}

//ParseTree returns the raw tree for the formula f. The root is a group
//with multiplier 1.
func ParseTree(f string) (*Group, error) {
	p := &parser{src: []rune(f), formula: f}
	children, err := p.seq(0)
	if err != nil {
		return nil, err
	}
	if p.depth != 0 {
		return nil, p.errorf(UnbalancedBrackets)
	}
	return &Group{Children: children, Multiplier: 1}, nil
}

//Flatten reduces a formula tree to a flat element-count map. Repeated
//elements are summed.
func Flatten(G *Group) map[string]float64 {
	ret := make(map[string]float64)
	if G == nil {
		return ret
	}
	flatten(G, 1, ret)
	return ret
}

func flatten(n Node, mult float64, dst map[string]float64) {
	switch v := n.(type) {
	case *Element:
		dst[v.Symbol] += v.Count * mult
	case *Group:
		for _, c := range v.Children {
			flatten(c, mult*v.Multiplier, dst)
		}
	}
}

//Symbols returns the element symbols of a count map, sorted.
func Symbols(m map[string]float64) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

var closers = map[rune]rune{'(': ')', '[': ']'}

type parser struct {
	formula string
	src     []rune
	pos     int
	depth   int
}

func (p *parser) errorf(msg string) *SyntaxError {
	return &SyntaxError{formula: p.formula, pos: p.pos, message: msg, deco: []string{"ParseTree"}}
}

//seq reads nodes until the end of the input or until the bracket that
//closes open. open is 0 for the top level.
func (p *parser) seq(open rune) ([]Node, error) {
	var nodes []Node
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		switch {
		case unicode.IsSpace(r):
			p.pos++
		case isUpper(r):
			el, err := p.element()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, el)
		case r == '(' || r == '[':
			p.pos++
			p.depth++
			children, err := p.seq(r)
			if err != nil {
				return nil, err
			}
			mult, err := p.index()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Group{Children: children, Multiplier: mult})
		case r == ')' || r == ']':
			if open == 0 {
				return nil, p.errorf(UnbalancedBrackets)
			}
			if closers[open] != r {
				return nil, p.errorf(MismatchedBrackets)
			}
			p.pos++
			p.depth--
			return nodes, nil
		case isDigit(r):
			return nil, p.errorf(IndexWithoutElement)
		default:
			return nil, p.errorf(fmt.Sprintf("%s %q", UnexpectedCharacter, r))
		}
	}
	if open != 0 {
		return nil, p.errorf(UnbalancedBrackets)
	}
	return nodes, nil
}

//element reads an uppercase letter, any following lowercase letters and
//the optional index.
func (p *parser) element() (*Element, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isLower(p.src[p.pos]) {
		p.pos++
	}
	sym := string(p.src[start:p.pos])
	count, err := p.index()
	if err != nil {
		return nil, err
	}
	return &Element{Symbol: sym, Count: count}, nil
}

//index reads a run of digits, with at most one decimal point followed by
//a digit. It returns 1 if there is no index at the current position.
func (p *parser) index() (float64, error) {
	start := p.pos
	dot := false
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if isDigit(r) {
			p.pos++
			continue
		}
		if r == '.' && !dot && p.pos > start && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1]) {
			dot = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 1, nil
	}
	v, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	if err != nil {
		return 0, p.errorf(fmt.Sprintf("%s: %v", UnexpectedCharacter, err))
	}
	return v, nil
}

func fmtIndex(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
