// Package alignment implements the string-alignment core of the throughput
// metrics: the minimum string distance table, the optimal-alignment
// backtrace, and the information-weighted edit distance.
//
// The package carries no probability bookkeeping of its own. Weighted
// operations receive symbol costs through a callback, so the probability
// model lives in one place (the tet package) and the alignment machinery
// stays testable with hand-made cost tables.
package alignment

// Null marks a gap in an aligned sequence: a presented symbol that was never
// transcribed, or a transcribed symbol that was never presented, depending on
// the side it appears on. The value sits outside the valid Unicode range and
// can never collide with an input symbol.
const Null rune = -1

// Alignment is a pair of equal-length sequences produced by tracing one
// optimal path through the distance grid. Position k holds two symbols
// (a match or a substitution), a presented symbol against Null (an
// omission), or Null against a transcribed symbol (an insertion).
type Alignment struct {
	Presented   []rune
	Transcribed []rune
}

// Counts tallies the positions of an alignment by error class.
type Counts struct {
	// Insertions counts transcribed symbols with no presented counterpart.
	Insertions int

	// Omissions counts presented symbols that were never transcribed.
	Omissions int

	// Substitutions counts positions where both sides hold symbols that
	// disagree.
	Substitutions int

	// Correct counts positions where both sides agree.
	Correct int
}

// Grid computes the minimum string distance table between the two symbol
// sequences with unit insertion, deletion and substitution costs
// (https://dl.acm.org/doi/10.1145/572020.572056). Cell (i, j) holds the
// distance between the first i presented and the first j transcribed
// symbols, so the final cell is the full distance.
func Grid(presented, transcribed []rune) [][]int {
	n, m := len(presented), len(transcribed)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := d[i-1][j] + 1 // omit presented[i-1]
			if ins := d[i][j-1] + 1; ins < cost {
				cost = ins // insert transcribed[j-1]
			}
			diag := d[i-1][j-1]
			if presented[i-1] != transcribed[j-1] {
				diag++ // substitute
			}
			if diag < cost {
				cost = diag
			}
			d[i][j] = cost
		}
	}

	return d
}

// Distance returns the minimum string distance between the two sequences.
func Distance(presented, transcribed []rune) int {
	d := Grid(presented, transcribed)
	return d[len(presented)][len(transcribed)]
}

// Align traces one optimal path through the distance grid and returns the
// aligned pair. Several paths can share the minimum distance; ties are
// broken in a fixed order (insertion, then omission, then the diagonal), so
// the error counts derived from the result never depend on input order or
// map iteration.
func Align(presented, transcribed []rune) Alignment {
	d := Grid(presented, transcribed)
	x, y := len(presented), len(transcribed)

	pa := make([]rune, 0, x+y)
	ta := make([]rune, 0, x+y)

	for x > 0 || y > 0 {
		switch {
		case y > 0 && d[x][y] == d[x][y-1]+1:
			// Insertion: transcribed symbol with no counterpart.
			pa = append(pa, Null)
			ta = append(ta, transcribed[y-1])
			y--
		case x > 0 && d[x][y] == d[x-1][y]+1:
			// Omission: presented symbol with no counterpart.
			pa = append(pa, presented[x-1])
			ta = append(ta, Null)
			x--
		default:
			// Diagonal: match or substitution. Unreachable while either
			// index is zero, because the base rows always satisfy one of
			// the gap branches.
			pa = append(pa, presented[x-1])
			ta = append(ta, transcribed[y-1])
			x--
			y--
		}
	}

	reverse(pa)
	reverse(ta)
	return Alignment{Presented: pa, Transcribed: ta}
}

// Len returns the alignment length. Both sides always share it.
func (a Alignment) Len() int {
	return len(a.Presented)
}

// Count tallies the alignment by error class.
func (a Alignment) Count() Counts {
	var c Counts
	for k := range a.Presented {
		p, t := a.Presented[k], a.Transcribed[k]
		switch {
		case p == Null:
			c.Insertions++
		case t == Null:
			c.Omissions++
		case p == t:
			c.Correct++
		default:
			c.Substitutions++
		}
	}
	return c
}

// String renders the two aligned sequences separated by " / ", with "_"
// standing in for gaps. Intended for test failures and debug logs.
func (a Alignment) String() string {
	render := func(side []rune) []rune {
		out := make([]rune, len(side))
		for i, r := range side {
			if r == Null {
				out[i] = '_'
			} else {
				out[i] = r
			}
		}
		return out
	}
	return string(render(a.Presented)) + " / " + string(render(a.Transcribed))
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
