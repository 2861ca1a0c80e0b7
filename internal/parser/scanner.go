// Package parser turns the tagged description language into an Automaton
// and its initial tapes.
//
// Parsing is split in two: Scan classifies every line into a Directive,
// then Build runs ordered semantic passes over the directives. The first
// failing pass aborts the whole parse.
package parser

import (
	"strings"
)

// Kind identifies the tag of a directive line.
type Kind int

const (
	Ignored    Kind = iota // blank, comment or unrecognised line
	States                 // [s]:NAME,NAME,...
	Start                  // [e]:NAME
	Halt                   // [x]:NAME
	Alphabet               // [a]:SYM,SYM,...
	Budget                 // [c]:INTEGER
	Transition             // [t|SOURCE]:BODY|BODY|...
	Tape                   // [b|DEFAULT]:CONTENT
)

var kindNames = []string{
	"ignored",
	"states",
	"start",
	"halt",
	"alphabet",
	"budget",
	"transition",
	"tape",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Directive is one classified line.
type Directive struct {
	Kind    Kind
	Arg     string // SOURCE for [t|..], DEFAULT for [b|..]
	Payload string // text after the tag's colon
	Line    int    // 0-based line index
}

// simple tags carry no argument.
var simpleTags = []struct {
	tag  string
	kind Kind
}{
	{"[s]:", States},
	{"[e]:", Start},
	{"[x]:", Halt},
	{"[a]:", Alphabet},
	{"[c]:", Budget},
}

// Scan classifies every line of src. The result has one Directive per line,
// including Ignored ones, so Directive.Line always equals its slice index.
func Scan(src string) []Directive {
	lines := strings.Split(src, "\n")
	out := make([]Directive, len(lines))
	for i, line := range lines {
		out[i] = ScanLine(line, i)
	}
	return out
}

// ScanLine classifies a single line.
func ScanLine(line string, index int) Directive {
	d := Directive{Kind: Ignored, Line: index}

	line = strings.TrimRight(line, "\r")
	line = strings.TrimLeft(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return d
	}

	for _, st := range simpleTags {
		if rest, ok := strings.CutPrefix(line, st.tag); ok {
			d.Kind = st.kind
			d.Payload = rest
			return d
		}
	}

	if arg, rest, ok := cutArgTag(line, "[t|"); ok {
		d.Kind, d.Arg, d.Payload = Transition, arg, rest
		return d
	}
	if arg, rest, ok := cutArgTag(line, "[b|"); ok {
		d.Kind, d.Arg, d.Payload = Tape, arg, rest
		return d
	}
	return d
}

// cutArgTag matches "<prefix>ARG]:REST" where ARG contains no ']'.
func cutArgTag(line, prefix string) (arg, rest string, ok bool) {
	after, found := strings.CutPrefix(line, prefix)
	if !found {
		return "", "", false
	}
	end := strings.IndexByte(after, ']')
	if end < 0 || !strings.HasPrefix(after[end:], "]:") {
		return "", "", false
	}
	return after[:end], after[end+2:], true
}

// Filter returns the directives of kind k, in line order.
func Filter(directives []Directive, k Kind) []Directive {
	var out []Directive
	for _, d := range directives {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}
