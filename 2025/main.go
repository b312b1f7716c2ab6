package main

import (
	_ "embed"
	"strings"

	"github.com/lanterns/aoc"
	"github.com/lanterns/aoc/circuit"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) boxes() *circuit.Field {
	var boxes []circuit.Box
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		c := aoc.Floats(strings.Split(line, ",")...)
		if len(c) != 3 {
			panic("want x,y,z; got " + line)
		}
		boxes = append(boxes, circuit.Box{X: c[0], Y: c[1], Z: c[2]})
	})
	return circuit.NewField(boxes)
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	connections := 1000
	if s.SampleMode {
		connections = 10
	}
	f := s.boxes()
	s.Debugf("%d boxes, connecting %d", f.Len(), connections)
	return aoc.MustGet(circuit.LargestProduct(f, connections, 3))
}

// want=25272
func (s solver) D8p2() any {
	f := s.boxes()
	e := aoc.MustGet(circuit.CompletingEdge(f))
	s.Debugf("completed by %v", e)
	return aoc.MustGet(circuit.XProduct(f, e))
}
