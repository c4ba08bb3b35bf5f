package leanarg

import (
	"fmt"
	"os"
	"strings"
)

// ParseError reports malformed command-line input: an unknown option
// name, a missing or unexpected option value, an option-like token in
// operand position, leftover tokens, a missing required argument, or
// a value that cannot be converted to the bound type.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// Signal is returned by Parse when a signal argument was encountered.
// It identifies the argument by its declared names; a name that was
// not declared is zero-valued.
type Signal struct {
	Short rune
	Long  string
}

func (s *Signal) Error() string {
	if s.Long != "" {
		return "signal option: " + s.Long
	}
	return "signal option: " + string(s.Short)
}

// Parser holds the declared arguments and the parsing and help
// configuration. The exported fields may be adjusted freely before
// parsing or rendering help; the zero value of a prefix, separator,
// or terminator field disables that recognition path.
type Parser struct {
	ShortPrefix   rune   // prefix of short options; 0 disables them
	LongPrefix    string // prefix of long options; "" disables them
	LongSeparator rune   // splits "--name=value" tokens; 0 disables merged values
	Terminator    string // ends option recognition; "" disables it

	Prolog string // paragraph before the usage section
	Epilog string // paragraph after the glossaries

	UsageTitle    string // "" omits the usage section
	OptionsTitle  string // "" omits the options glossary
	OperandsTitle string // "" omits the operands glossary

	UtilityName   string // captured from the first token when empty
	OptionsUsage  string // replaces the generated option usage tokens
	OperandsUsage string // replaces the generated operand usage tokens
	DefaultIntro  string // label before default values; "" omits them

	HelpWidth  int // wrap column for help text
	HelpIndent int // indent of usage tokens and glossary terms

	options  []argument
	operands []argument
}

// NewParser returns a Parser with conventional Unix syntax and the
// default help layout. The prolog and epilog paragraphs may be empty.
func NewParser(prolog, epilog string) *Parser {
	return &Parser{
		ShortPrefix:   '-',
		LongPrefix:    "--",
		LongSeparator: '=',
		Terminator:    "--",
		Prolog:        prolog,
		Epilog:        epilog,
		UsageTitle:    "USAGE",
		OptionsTitle:  "OPTIONS",
		OperandsTitle: "OPERANDS",
		DefaultIntro:  "default: ",
		HelpWidth:     80,
		HelpIndent:    2,
	}
}

// ParseCommandLine parses the process's command line, os.Args.
func (p *Parser) ParseCommandLine() error {
	return p.Parse(os.Args)
}

// Parse binds the given tokens to the declared arguments. The first
// token is taken as the utility name. On failure it returns a
// *ParseError describing the first problem found, or a *Signal if a
// signal argument was matched; arguments bound before the failure
// keep their new values. Each call starts with fresh matching state.
func (p *Parser) Parse(argv []string) error {
	r := &parseRun{
		p:      p,
		tokens: argv,
		done:   make(map[argument]bool),
	}
	return r.run()
}

// ParseRun is the state of one parse attempt: the cursor into the
// token sequence, the sticky terminator state, and the set of
// arguments satisfied so far. A fresh run is created per Parse call
// so that repeated calls do not observe each other's state.
type parseRun struct {
	p          *Parser
	tokens     []string
	pos        int
	terminated bool
	done       map[argument]bool
}

func (r *parseRun) run() error {
	r.utilityName()

	if err := r.options(); err != nil {
		return err
	}
	if err := r.operands(); err != nil {
		return err
	}
	r.terminator()

	if err := r.checkEnd(); err != nil {
		return err
	}
	if err := r.checkRequired(r.p.options); err != nil {
		return err
	}
	return r.checkRequired(r.p.operands)
}

// UtilityName consumes the conventional argv[0] slot. The token is
// kept as the display name unless one was configured explicitly.
func (r *parseRun) utilityName() {
	if r.pos >= len(r.tokens) {
		return
	}
	if r.p.UtilityName == "" {
		r.p.UtilityName = r.tokens[r.pos]
	}
	r.pos++
}

// Options consumes tokens as long as one of the recognizers makes
// progress. The terminator is tried first, then long options, then
// short option clusters; a terminator ends the stage.
func (r *parseRun) options() error {
	for {
		if r.terminator() {
			return nil
		}

		matched, err := r.longOption()
		if err != nil {
			return err
		}
		if matched {
			continue
		}

		matched, err = r.shortOptions()
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
	}
}

// Terminator consumes the terminator token, at most once per run.
// The state is sticky: all later option and terminator recognition
// is disabled.
func (r *parseRun) terminator() bool {
	if r.pos >= len(r.tokens) || r.terminated ||
		r.p.Terminator == "" || r.tokens[r.pos] != r.p.Terminator {
		return false
	}

	r.terminated = true
	r.pos++
	return true
}

func (r *parseRun) predictLongOption() bool {
	if r.pos >= len(r.tokens) || r.terminated || r.p.LongPrefix == "" {
		return false
	}
	token := r.tokens[r.pos]
	return len(token) > len(r.p.LongPrefix) && strings.HasPrefix(token, r.p.LongPrefix)
}

func (r *parseRun) predictShortOption() bool {
	if r.pos >= len(r.tokens) || r.terminated || r.p.ShortPrefix == 0 {
		return false
	}
	token := []rune(r.tokens[r.pos])
	return len(token) > 1 && token[0] == r.p.ShortPrefix
}

func (r *parseRun) longOption() (bool, error) {
	if !r.predictLongOption() {
		return false, nil
	}

	token := r.tokens[r.pos]
	r.pos++

	// Split "--name=value" at the first separator. The value keeps
	// any further separator characters, and may be empty.
	name := token[len(r.p.LongPrefix):]
	value, hasSep := "", false
	if r.p.LongSeparator != 0 {
		if i := strings.IndexRune(name, r.p.LongSeparator); i >= 0 {
			name, value = name[:i], name[i+len(string(r.p.LongSeparator)):]
			hasSep = true
		}
	}

	option, err := r.p.findLongOption(name)
	if err != nil {
		return false, err
	}

	if option.takesValue() {
		if hasSep {
			if err := option.parse(value); err != nil {
				return false, err
			}
		} else {
			if r.pos >= len(r.tokens) {
				return false, parseErrorf("cannot find value for option: %s", token)
			}
			if err := option.parse(r.tokens[r.pos]); err != nil {
				return false, err
			}
			r.pos++
		}
	} else if hasSep {
		return false, parseErrorf("unexpected option value: %s", token)
	}

	return true, r.finish(option)
}

func (r *parseRun) shortOptions() (bool, error) {
	if !r.predictShortOption() {
		return false, nil
	}

	token := r.tokens[r.pos]
	r.pos++

	names := []rune(token)[1:]
	for i := 0; i < len(names); i++ {
		option, err := r.p.findShortOption(names[i])
		if err != nil {
			return false, err
		}

		if option.takesValue() {
			if i+1 < len(names) {
				// Rest of the cluster is the value
				if err := option.parse(string(names[i+1:])); err != nil {
					return false, err
				}
				i = len(names) - 1
			} else {
				if r.pos >= len(r.tokens) {
					return false, parseErrorf("cannot find value for option: %s", token)
				}
				if err := option.parse(r.tokens[r.pos]); err != nil {
					return false, err
				}
				r.pos++
			}
		}

		if err := r.finish(option); err != nil {
			return false, err
		}
	}

	return true, nil
}

// Operands assigns the remaining tokens to the declared operands, in
// declaration order. Before each token the terminator is tried, so a
// terminator between operand values is consumed, not assigned; after
// it, option-like tokens become ordinary values. Without it they are
// an error.
func (r *parseRun) operands() error {
	for _, operand := range r.p.operands {
		for {
			r.terminator()
			if r.pos >= len(r.tokens) {
				return nil
			}

			if r.predictLongOption() || r.predictShortOption() {
				return parseErrorf("unexpected option: %s", r.tokens[r.pos])
			}

			if err := operand.parse(r.tokens[r.pos]); err != nil {
				return err
			}
			r.pos++

			if err := r.finish(operand); err != nil {
				return err
			}
			if !operand.isSink() {
				break
			}
		}
	}
	return nil
}

func (r *parseRun) checkEnd() error {
	if r.pos < len(r.tokens) {
		return parseErrorf("unexpected argument: %s", r.tokens[r.pos])
	}
	return nil
}

func (r *parseRun) checkRequired(args []argument) error {
	for _, arg := range args {
		if arg.isRequired() && !r.done[arg] {
			return parseErrorf("cannot find required argument: %s", r.p.expandName(arg))
		}
	}
	return nil
}

// Finish marks the argument satisfied and applies its side effect.
// A signal argument aborts the whole parse here.
func (r *parseRun) finish(arg argument) error {
	if err := arg.finish(); err != nil {
		return err
	}
	r.done[arg] = true
	return nil
}

// ExpandName renders an argument's most specific name for error
// messages: short form, else long form, else the value-name label.
func (p *Parser) expandName(arg argument) string {
	if arg.shortName() != 0 {
		return string(p.ShortPrefix) + string(arg.shortName())
	}
	if arg.longName() != "" {
		return p.LongPrefix + arg.longName()
	}
	return arg.valueName()
}

func (p *Parser) findLongOption(name string) (argument, error) {
	if name != "" {
		for _, option := range p.options {
			if option.longName() == name {
				return option, nil
			}
		}
	}
	return nil, parseErrorf("unknown option name: %s", name)
}

func (p *Parser) findShortOption(name rune) (argument, error) {
	if name != 0 {
		for _, option := range p.options {
			if option.shortName() == name {
				return option, nil
			}
		}
	}
	return nil, parseErrorf("unknown option name: %s", string(name))
}
