package main

import (
	_ "embed"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/lanterns/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) calories() *aoc.PQ[int] {
	pq := aoc.MaxQueue[int]()
	for _, g := range s.Groups() {
		total := aoc.Sum(aoc.Ints(g...)...)
		pq.PushValue(total, total)
	}
	return pq
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	return aoc.Sum(aoc.TopN(s.calories(), 1)...)
}

// want=45000
func (s solver) D1p2() any {
	return aoc.Sum(aoc.TopN(s.calories(), 3)...)
}

// rounds returns the opponent's shape and the second column of each round,
// both as 0, 1 or 2.
func (s solver) rounds() [][2]int {
	var out [][2]int
	s.ForLines(func(line string) {
		var a, b string
		if _, err := fmt.Sscanf(line, "%s %s", &a, &b); err != nil {
			log.Fatalf("bad round %q: %v", line, err)
		}
		out = append(out, [2]int{int(a[0] - 'A'), int(b[0] - 'X')})
	})
	return out
}

// score returns the score of playing me against opp, where 0 is rock, 1
// paper and 2 scissors.
func score(opp, me int) int {
	outcome := (me - opp + 4) % 3 // 0 lose, 1 draw, 2 win
	return me + 1 + 3*outcome
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	total := 0
	for _, r := range s.rounds() {
		total += score(r[0], r[1])
	}
	return total
}

// want=12
func (s solver) D2p2() any {
	total := 0
	for _, r := range s.rounds() {
		opp, outcome := r[0], r[1]
		total += score(opp, (opp+outcome+2)%3)
	}
	return total
}

func priority(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27
	}
	log.Fatalf("bad item %q", r)
	return 0
}

// common returns the item present in every one of sets.
func common(sets ...string) rune {
	for _, r := range sets[0] {
		found := true
		for _, other := range sets[1:] {
			if !strings.ContainsRune(other, r) {
				found = false
				break
			}
		}
		if found {
			return r
		}
	}
	log.Fatalf("no common item in %q", sets)
	return 0
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	total := 0
	s.ForLines(func(line string) {
		half := len(line) / 2
		total += priority(common(line[:half], line[half:]))
	})
	return total
}

// want=70
func (s solver) D3p2() any {
	lines := s.Lines()
	total := 0
	for i := 0; i+2 < len(lines); i += 3 {
		total += priority(common(lines[i : i+3]...))
	}
	return total
}

// assignments returns the section ranges a-b,c-d of each pair.
func (s solver) assignments() [][4]int {
	var out [][4]int
	s.ForLines(func(line string) {
		var r [4]int
		if _, err := fmt.Sscanf(line, "%d-%d,%d-%d", &r[0], &r[1], &r[2], &r[3]); err != nil {
			log.Fatalf("bad assignment %q: %v", line, err)
		}
		out = append(out, r)
	})
	return out
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	n := 0
	for _, r := range s.assignments() {
		if r[0] <= r[2] && r[1] >= r[3] || r[2] <= r[0] && r[3] >= r[1] {
			n++
		}
	}
	return n
}

// want=4
func (s solver) D4p2() any {
	n := 0
	for _, r := range s.assignments() {
		if r[0] <= r[3] && r[2] <= r[1] {
			n++
		}
	}
	return n
}

type move struct {
	n, from, to int
}

// crates parses the drawing of the stacks and the moves that follow it.
// Stacks and moves are 0-indexed.
func (s solver) crates() ([]*aoc.Stack[byte], []move) {
	groups := strings.SplitN(string(s.Input()), "\n\n", 2)
	if len(groups) != 2 {
		log.Fatal("missing moves")
	}
	drawing := strings.Split(strings.TrimRight(groups[0], "\n"), "\n")
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make([]*aoc.Stack[byte], len(labels))
	for i := range stacks {
		stacks[i] = new(aoc.Stack[byte])
	}
	for y := len(drawing) - 2; y >= 0; y-- {
		row := drawing[y]
		for i := range stacks {
			if x := 1 + 4*i; x < len(row) && row[x] >= 'A' && row[x] <= 'Z' {
				stacks[i].Push(row[x])
			}
		}
	}

	var moves []move
	for _, line := range strings.Split(strings.TrimSpace(groups[1]), "\n") {
		var m move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.n, &m.from, &m.to); err != nil {
			log.Fatalf("bad move %q: %v", line, err)
		}
		m.from--
		m.to--
		moves = append(moves, m)
	}
	return stacks, moves
}

func tops(stacks []*aoc.Stack[byte]) string {
	var sb strings.Builder
	for _, st := range stacks {
		if c, ok := st.Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

/*
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() any {
	stacks, moves := s.crates()
	for _, m := range moves {
		for i := 0; i < m.n; i++ {
			if c, ok := stacks[m.from].Pop(); ok {
				stacks[m.to].Push(c)
			}
		}
	}
	return tops(stacks)
}

// want=MCD
func (s solver) D5p2() any {
	stacks, moves := s.crates()
	for _, m := range moves {
		var lifted aoc.Stack[byte]
		for i := 0; i < m.n; i++ {
			if c, ok := stacks[m.from].Pop(); ok {
				lifted.Push(c)
			}
		}
		lifted.While(func(c byte) bool {
			stacks[m.to].Push(c)
			return true
		})
	}
	return tops(stacks)
}

// marker returns the number of characters read when the last n of them are
// all different, or -1 if that never happens.
func marker(in string, n int) int {
	var window aoc.Queue[rune]
	for i, r := range in {
		window.Push(r)
		if window.Len() > n {
			window.Pop()
		}
		if window.Len() < n {
			continue
		}
		seen := make(map[rune]bool, n)
		for _, w := range window.Items() {
			seen[w] = true
		}
		if len(seen) == n {
			return i + 1
		}
	}
	return -1
}

/*
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func (s solver) D6p1() any {
	return marker(s.Text(), 4)
}

// want=19
func (s solver) D6p2() any {
	return marker(s.Text(), 14)
}

// dirSizes replays the shell transcript and returns the total size of every
// directory, keyed by absolute path.
func (s solver) dirSizes() map[string]int {
	sizes := map[string]int{"/": 0}
	seen := map[string]bool{}
	cwd := "/"
	s.ForLines(func(line string) {
		switch {
		case line == "" || line == "$ ls" || strings.HasPrefix(line, "dir "):
		case strings.HasPrefix(line, "$ cd "):
			dir := aoc.TrimPrefix(line, "$ cd ")
			if path.IsAbs(dir) {
				cwd = path.Clean(dir)
			} else {
				cwd = path.Join(cwd, dir)
			}
		default:
			size, name, ok := strings.Cut(line, " ")
			if !ok {
				log.Fatalf("bad ls entry %q", line)
			}
			file := path.Join(cwd, name)
			if seen[file] {
				return
			}
			seen[file] = true
			n := aoc.Int(size)
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += n
				if dir == "/" {
					break
				}
			}
		}
	})
	return sizes
}

/*
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() any {
	total := 0
	for _, size := range s.dirSizes() {
		if size <= 100000 {
			total += size
		}
	}
	return total
}

// want=24933642
func (s solver) D7p2() any {
	const (
		disk = 70000000
		need = 30000000
	)
	sizes := s.dirSizes()
	missing := need - (disk - sizes["/"])
	pq := aoc.MinQueue[string]()
	for dir, size := range sizes {
		if size >= missing {
			pq.PushValue(dir, size)
		}
	}
	best := pq.Pop()
	s.Debugf("deleting %v", best)
	return best.P
}

/*
want=21

30373
25512
65332
33549
35390
*/
func (s solver) D8p1() any {
	g := aoc.DigitGrid(s.Lines())
	visible := map[aoc.Pt]bool{}
	for _, start := range g.EdgePaths() {
		tallest := -1
		for p, ok := start, true; ok; p, ok = g.Move(p) {
			if h := g.At(p.Pt); h > tallest {
				visible[p.Pt] = true
				tallest = h
			}
		}
	}
	return len(visible)
}

// want=8
func (s solver) D8p2() any {
	g := aoc.DigitGrid(s.Lines())
	best := 0
	g.ForEach(func(pt aoc.Pt, h int) {
		score := 1
		for _, d := range aoc.Directions {
			n := 0
			for p, ok := g.Move(aoc.Path{Pt: pt, Dir: d}); ok; p, ok = g.Move(p) {
				n++
				if g.At(p.Pt) >= h {
					break
				}
			}
			score *= n
		}
		best = max(best, score)
	})
	return best
}
