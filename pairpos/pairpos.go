package main

import (
	"fmt"
	"sort"
	"strings"
)

// A pair is two tokens in the order they appeared in a sequence.
// (a, b) and (b, a) are distinct.
type pair struct {
	a, b string
}

func (p pair) String() string { return fmt.Sprintf("(%s, %s)", p.a, p.b) }

func pairLess(p0, p1 pair) bool {
	if p0.a != p1.a {
		return p0.a < p1.a
	}
	return p0.b < p1.b
}

// A position is where a pair was found: i < j.
type position struct {
	i, j int
}

func (p position) String() string { return fmt.Sprintf("(%d, %d)", p.i, p.j) }

// A positionTable counts, for each ordered token pair, how many sequences
// placed that pair at each position.
type positionTable map[pair]map[position]int

func tokens(seq string) []string {
	return strings.Fields(seq)
}

func buildTable(seqs []string) positionTable {
	t := make(positionTable)
	for _, seq := range seqs {
		t.add(tokens(seq))
	}
	return t
}

func (t positionTable) add(toks []string) {
	for i := range toks {
		for j := i + 1; j < len(toks); j++ {
			p := pair{toks[i], toks[j]}
			m, ok := t[p]
			if !ok {
				m = make(map[position]int)
				t[p] = m
			}
			m[position{i, j}]++
		}
	}
}

// pairs returns the table's keys in sorted order.
func (t positionTable) pairs() []pair {
	ps := make([]pair, 0, len(t))
	for p := range t {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return pairLess(ps[i], ps[j]) })
	return ps
}

func (t positionTable) observations() int {
	var n int
	for _, m := range t {
		for _, count := range m {
			n += count
		}
	}
	return n
}

// onlyIn returns the pairs of a which never occur in b.
func onlyIn(a, b positionTable) []pair {
	var ps []pair
	for _, p := range a.pairs() {
		if _, ok := b[p]; !ok {
			ps = append(ps, p)
		}
	}
	return ps
}

type pairPosition struct {
	pair
	pos   position
	count int
}

// positionsOnlyIn returns every (pair, position) observed in a for which b
// has no observation of that pair at that position.
func positionsOnlyIn(a, b positionTable) []pairPosition {
	var pps []pairPosition
	for _, p := range a.pairs() {
		other := b[p]
		var found []pairPosition
		for pos, count := range a[p] {
			if _, ok := other[pos]; ok {
				continue
			}
			found = append(found, pairPosition{p, pos, count})
		}
		sort.Slice(found, func(i, j int) bool {
			if found[i].pos.i != found[j].pos.i {
				return found[i].pos.i < found[j].pos.i
			}
			return found[i].pos.j < found[j].pos.j
		})
		pps = append(pps, found...)
	}
	return pps
}
