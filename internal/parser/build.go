package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/comalice/tapemachine/internal/primitives"
)

// Program is a validated automaton together with the tapes to run on it.
type Program struct {
	Automaton *primitives.Automaton
	Tapes     []primitives.Tape
}

// Parse scans and builds src in one call.
func Parse(src string) (*Program, error) {
	return Build(Scan(src))
}

// Build runs the semantic passes in fixed order:
// states, start, halt, alphabet, transitions, step budget, tapes.
// The first failing pass aborts; no partial Program is returned.
func Build(directives []Directive) (*Program, error) {
	b := &builder{
		directives: directives,
		a: &primitives.Automaton{
			States:   primitives.NewStateSet(),
			Alphabet: primitives.NewAlphabet(),
		},
	}

	passes := []func() error{
		b.states,
		b.start,
		b.halt,
		b.alphabet,
		b.transitions,
		b.budget,
		b.tapes,
	}
	for _, pass := range passes {
		if err := pass(); err != nil {
			return nil, err
		}
	}

	if err := b.a.Validate(); err != nil {
		return nil, err
	}
	return &Program{Automaton: b.a, Tapes: b.tapeList}, nil
}

type builder struct {
	directives []Directive
	a          *primitives.Automaton
	tapeList   []primitives.Tape
}

func (b *builder) states() error {
	for _, d := range Filter(b.directives, States) {
		for _, tok := range strings.Split(d.Payload, ",") {
			name := strings.TrimSpace(tok)
			if name == "" {
				return primitives.InvalidSyntax(d.Line, "empty state name")
			}
			b.a.States.Add(primitives.State(name))
		}
	}
	return nil
}

func (b *builder) start() error {
	st, err := b.designate(Start, primitives.ErrStartStateNotSpecified)
	if err != nil {
		return err
	}
	b.a.Start = st
	return nil
}

func (b *builder) halt() error {
	st, err := b.designate(Halt, primitives.ErrEndStateNotSpecified)
	if err != nil {
		return err
	}
	b.a.Halt = st
	return nil
}

// designate resolves the single [e] or [x] directive.
func (b *builder) designate(k Kind, missing error) (primitives.State, error) {
	ds := Filter(b.directives, k)
	if len(ds) == 0 {
		return "", primitives.NewParseError(missing, primitives.NoLine)
	}
	if len(ds) > 1 {
		return "", primitives.InvalidSyntax(ds[1].Line, "duplicate %s directive", k)
	}
	st := primitives.State(strings.TrimSpace(ds[0].Payload))
	if !b.a.States.Has(st) {
		return "", primitives.NoSuchState(st, ds[0].Line)
	}
	return st, nil
}

func (b *builder) alphabet() error {
	for _, d := range Filter(b.directives, Alphabet) {
		for _, tok := range strings.Split(d.Payload, ",") {
			r, _ := utf8.DecodeRuneInString(tok)
			if tok == "" || r == utf8.RuneError {
				return primitives.InvalidSyntax(d.Line, "empty alphabet symbol")
			}
			b.a.Alphabet.Add(primitives.Symbol(r))
		}
	}
	return nil
}

func (b *builder) transitions() error {
	for _, d := range Filter(b.directives, Transition) {
		source := primitives.State(strings.TrimSpace(d.Arg))
		if !b.a.States.Has(source) {
			return primitives.NoSuchState(source, d.Line)
		}
		for _, body := range strings.Split(d.Payload, "|") {
			t, err := b.rule(source, body, d.Line)
			if err != nil {
				return err
			}
			b.a.Transitions = append(b.a.Transitions, t)
		}
	}
	return nil
}

// rule parses one SYMBOL->(DEST,SYMBOL,DIR) body. DEST ends at the first
// comma and DIR starts after the last one.
func (b *builder) rule(source primitives.State, body string, line int) (primitives.Transition, error) {
	body = strings.TrimRight(body, " \t")
	arrow := strings.Index(body, "->(")
	if arrow < 0 || !strings.HasSuffix(body, ")") {
		return primitives.Transition{}, primitives.InvalidSyntax(line, "rule %q: want SYMBOL->(DEST,SYMBOL,DIR)", body)
	}
	read, ok := single(body[:arrow])
	if !ok {
		return primitives.Transition{}, primitives.InvalidSyntax(line, "rule %q: read symbol must be one character", body)
	}

	inner := body[arrow+3 : len(body)-1]
	first := strings.IndexByte(inner, ',')
	last := strings.LastIndexByte(inner, ',')
	if first < 0 || first == last {
		return primitives.Transition{}, primitives.InvalidSyntax(line, "rule %q: want SYMBOL->(DEST,SYMBOL,DIR)", body)
	}
	write, ok := single(inner[first+1 : last])
	if !ok {
		return primitives.Transition{}, primitives.InvalidSyntax(line, "rule %q: write symbol must be one character", body)
	}

	move, ok := primitives.ParseDirection(strings.TrimSpace(inner[last+1:]))
	if !ok {
		return primitives.Transition{}, &primitives.ParseError{
			Kind:   primitives.ErrWrongLiteral,
			Line:   line,
			Detail: strconv.Quote(inner[last+1:]),
		}
	}

	dest := primitives.State(strings.TrimSpace(inner[:first]))
	if !b.a.States.Has(dest) {
		return primitives.Transition{}, primitives.NoSuchState(dest, line)
	}

	for _, sym := range []primitives.Symbol{read, write} {
		if !b.a.Alphabet.Has(sym) {
			return primitives.Transition{}, &primitives.ParseError{
				Kind:   primitives.ErrNoSuchLetter,
				Line:   line,
				Detail: strconv.QuoteRune(rune(sym)),
			}
		}
	}

	return primitives.NewTransition(source, read, dest, write, move), nil
}

func (b *builder) budget() error {
	ds := Filter(b.directives, Budget)
	switch len(ds) {
	case 0:
		b.a.StepBudget = primitives.DefaultStepBudget
		return nil
	case 1:
	default:
		return primitives.InvalidSyntax(ds[1].Line, "duplicate budget directive")
	}

	n, err := strconv.Atoi(strings.TrimSpace(ds[0].Payload))
	if err != nil || n < 0 {
		return primitives.InvalidSyntax(ds[0].Line, "step budget %q is not a non-negative integer", ds[0].Payload)
	}
	b.a.StepBudget = n
	return nil
}

func (b *builder) tapes() error {
	for _, d := range Filter(b.directives, Tape) {
		blank, _ := utf8.DecodeRuneInString(d.Arg)
		if d.Arg == "" {
			return primitives.InvalidSyntax(d.Line, "tape has no default symbol")
		}
		tape, err := parseBand(primitives.Symbol(blank), d.Payload, d.Line)
		if err != nil {
			return err
		}
		b.tapeList = append(b.tapeList, tape)
	}
	return nil
}

// parseBand reads CONTENT[X]CONTENT. Exactly one bracket pair must enclose
// exactly one character; it marks the initial head position.
func parseBand(blank primitives.Symbol, content string, line int) (primitives.Tape, error) {
	runes := []rune(content)
	open, closing := -1, -1
	for i, r := range runes {
		switch r {
		case '[':
			if open >= 0 {
				return primitives.Tape{}, primitives.NewParseError(primitives.ErrStartIndexNotSpecified, line)
			}
			open = i
		case ']':
			if closing >= 0 {
				return primitives.Tape{}, primitives.NewParseError(primitives.ErrStartIndexNotSpecified, line)
			}
			closing = i
		}
	}
	if open < 0 || closing != open+2 {
		return primitives.Tape{}, primitives.NewParseError(primitives.ErrStartIndexNotSpecified, line)
	}

	cells := make([]primitives.Symbol, 0, len(runes)-2)
	for i, r := range runes {
		if i == open || i == closing {
			continue
		}
		cells = append(cells, primitives.Symbol(r))
	}
	return primitives.NewTape(blank, cells, open), nil
}

// single returns the only rune of s.
func single(s string) (primitives.Symbol, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return primitives.Symbol(r), true
}
