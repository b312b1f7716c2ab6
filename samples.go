package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"regexp"
	"strings"
)

type sample struct {
	input string
	want  string
}

// unknownWant marks a sample whose answer is not known yet; the result is
// printed but not checked.
const unknownWant = "???"

// sampleRx matches "want=ANSWER", optionally followed by a blank line and the
// sample input. Leading whitespace of the input is kept since some inputs
// (crate drawings) are column aligned.
var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\n[ \t]*\n(.+\n))?`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{
		want:  strings.TrimSpace(m[1]),
		input: m[2],
	}, true
}

// extractSamples returns the samples declared in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous sample.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples
}
