package leanarg

// Argument is the common contract of the four declarable kinds:
// signals, boolean flags, value options, and operand sinks. A short
// name of 0 and an empty long name mean the argument is positional.
type argument interface {
	shortName() rune
	longName() string
	valueName() string
	description() string

	isRequired() bool
	takesValue() bool
	isSink() bool

	// Parse converts one token and assigns it to the bound target.
	parse(token string) error

	// Finish applies the side effect of a successful match. For a
	// signal argument it returns a *Signal, which aborts the parse.
	finish() error

	// DefaultText renders the declaration-time value of the target
	// for help display. Empty for required and valueless arguments.
	defaultText() string
}

// Identity common to all argument kinds.
type identity struct {
	short    rune
	long     string
	value    string // value-name label, e.g. "FILE"
	help     string
	required bool
	hasValue bool
	sink     bool
}

func (a *identity) shortName() rune     { return a.short }
func (a *identity) longName() string    { return a.long }
func (a *identity) valueName() string   { return a.value }
func (a *identity) description() string { return a.help }
func (a *identity) isRequired() bool    { return a.required }
func (a *identity) takesValue() bool    { return a.hasValue }
func (a *identity) isSink() bool        { return a.sink }

func (a *identity) parse(string) error  { return nil }
func (a *identity) finish() error       { return nil }
func (a *identity) defaultText() string { return "" }

type signalArg struct {
	identity
}

func (a *signalArg) finish() error {
	return &Signal{Short: a.short, Long: a.long}
}

type flagArg struct {
	identity
	target *bool
}

func (a *flagArg) finish() error {
	*a.target = true
	return nil
}

type valueArg[T any] struct {
	identity
	target *T
	def    T // value of *target at declaration time
}

func (a *valueArg[T]) parse(token string) error {
	return decode(token, a.target)
}

func (a *valueArg[T]) defaultText() string {
	if a.required {
		return ""
	}
	return encodeValue(a.def)
}

type sinkArg[T any] struct {
	identity
	target *[]T
}

func (a *sinkArg[T]) parse(token string) error {
	var v T
	if err := decode(token, &v); err != nil {
		return err
	}
	*a.target = append(*a.target, v)
	return nil
}

// AddSignal declares an option that aborts parsing as soon as it is
// encountered, before any further tokens are examined and before
// required arguments are checked. Parse() then returns a *Signal
// carrying the given names, so the caller can tell a help or version
// request apart from a parse failure.
func (p *Parser) AddSignal(short rune, long string, description string) {
	p.options = append(p.options, &signalArg{identity{
		short: short,
		long:  long,
		help:  description,
	}})
}

// AddFlag declares a boolean option. The target is set to true when
// the flag appears on the command line, and left untouched otherwise.
func (p *Parser) AddFlag(target *bool, short rune, long string,
	description string, required bool) {

	p.options = append(p.options, &flagArg{identity{
		short:    short,
		long:     long,
		help:     description,
		required: required,
	}, target})
}

// AddOption declares an option that takes one value of type T. The
// current value of the target becomes the default reported by the
// help text; the target itself is only written when the option
// appears on the command line.
func AddOption[T any](p *Parser, target *T, short rune, long string,
	valueName, description string, required bool) {

	p.options = append(p.options, &valueArg[T]{identity{
		short:    short,
		long:     long,
		value:    valueName,
		help:     description,
		required: required,
		hasValue: true,
	}, target, *target})
}

// AddOperand declares a positional argument of type T. Operands are
// matched in declaration order; each consumes at most one token.
func AddOperand[T any](p *Parser, target *T, valueName, description string,
	required bool) {

	p.operands = append(p.operands, &valueArg[T]{identity{
		value:    valueName,
		help:     description,
		required: required,
		hasValue: true,
	}, target, *target})
}

// AddOperandSink declares a positional argument that consumes all
// remaining tokens, appending each to the target slice. Pre-existing
// elements of the slice are preserved.
func AddOperandSink[T any](p *Parser, target *[]T, valueName, description string,
	required bool) {

	p.operands = append(p.operands, &sinkArg[T]{identity{
		value:    valueName,
		help:     description,
		required: required,
		hasValue: true,
		sink:     true,
	}, target})
}
