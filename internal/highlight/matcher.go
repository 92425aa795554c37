// Package highlight marks whole-word, case-insensitive keyword occurrences in text.
//
// All keywords are compiled into one Aho-Corasick automaton. Overlapping
// candidates are resolved longest-first, so "project management" is marked as
// one span even when "project" is also a keyword.
package highlight

import (
	"sort"
	"strings"
	"unicode"
)

// Span is a half-open byte range [Start, End) of the original text.
type Span struct {
	Start int
	End   int
}

type node struct {
	next     map[rune]int
	fail     int
	dict     int // nearest terminal node on the fail chain, -1 if none
	depth    int
	terminal bool
}

// Matcher finds keyword occurrences. It is safe for concurrent use once compiled.
type Matcher struct {
	nodes []node
	size  int
}

// Compile builds a Matcher for the given keywords. Keywords are case-folded
// and deduplicated; blank keywords are ignored.
func Compile(keywords []string) *Matcher {
	m := &Matcher{nodes: []node{newNode(0)}}
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		folded := fold(strings.TrimSpace(kw))
		if len(folded) == 0 {
			continue
		}
		key := string(folded)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		m.insert(folded)
		m.size++
	}
	m.link()
	return m
}

// Len returns the number of distinct keywords compiled into the matcher.
func (m *Matcher) Len() int {
	return m.size
}

func newNode(depth int) node {
	return node{next: make(map[rune]int), dict: -1, depth: depth}
}

func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func (m *Matcher) insert(word []rune) {
	cur := 0
	for _, r := range word {
		nxt, ok := m.nodes[cur].next[r]
		if !ok {
			m.nodes = append(m.nodes, newNode(m.nodes[cur].depth+1))
			nxt = len(m.nodes) - 1
			m.nodes[cur].next[r] = nxt
		}
		cur = nxt
	}
	m.nodes[cur].terminal = true
}

// link computes failure and dictionary-suffix links breadth-first.
func (m *Matcher) link() {
	queue := make([]int, 0, len(m.nodes))
	for _, child := range m.nodes[0].next {
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for r, v := range m.nodes[u].next {
			f := m.nodes[u].fail
			for f != 0 {
				if _, ok := m.nodes[f].next[r]; ok {
					break
				}
				f = m.nodes[f].fail
			}
			if w, ok := m.nodes[f].next[r]; ok && w != v {
				m.nodes[v].fail = w
			}
			fv := m.nodes[v].fail
			if m.nodes[fv].terminal {
				m.nodes[v].dict = fv
			} else {
				m.nodes[v].dict = m.nodes[fv].dict
			}
			queue = append(queue, v)
		}
	}
}

// candidate is a match in rune coordinates.
type candidate struct {
	start, end int
}

// Find returns the non-overlapping keyword spans of text in ascending order.
// Only whole words match. When candidates overlap the longest wins, and among
// equal lengths the leftmost wins.
func (m *Matcher) Find(text string) []Span {
	if m.size == 0 || text == "" {
		return nil
	}

	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var cands []candidate
	state := 0
	for i, r := range runes {
		c := unicode.ToLower(r)
		for state != 0 {
			if _, ok := m.nodes[state].next[c]; ok {
				break
			}
			state = m.nodes[state].fail
		}
		if nxt, ok := m.nodes[state].next[c]; ok {
			state = nxt
		}

		n := state
		if !m.nodes[n].terminal {
			n = m.nodes[n].dict
		}
		for n > 0 {
			start := i - m.nodes[n].depth + 1
			if wholeWord(runes, start, i+1) {
				cands = append(cands, candidate{start: start, end: i + 1})
			}
			n = m.nodes[n].dict
		}
	}

	sort.Slice(cands, func(a, b int) bool {
		la, lb := cands[a].end-cands[a].start, cands[b].end-cands[b].start
		if la != lb {
			return la > lb
		}
		return cands[a].start < cands[b].start
	})

	taken := make([]bool, len(runes))
	var chosen []candidate
	for _, c := range cands {
		if overlaps(taken, c) {
			continue
		}
		for k := c.start; k < c.end; k++ {
			taken[k] = true
		}
		chosen = append(chosen, c)
	}

	sort.Slice(chosen, func(a, b int) bool { return chosen[a].start < chosen[b].start })

	spans := make([]Span, len(chosen))
	for i, c := range chosen {
		spans[i] = Span{Start: offsets[c.start], End: offsets[c.end]}
	}
	return spans
}

func overlaps(taken []bool, c candidate) bool {
	for k := c.start; k < c.end; k++ {
		if taken[k] {
			return true
		}
	}
	return false
}

// wholeWord reports whether runes[start:end] sits on word boundaries.
// A keyword edge that is not a word character imposes no boundary.
func wholeWord(runes []rune, start, end int) bool {
	if isWordRune(runes[start]) && start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if isWordRune(runes[end-1]) && end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
