/*
Package leanarg implements a minimal command-line parser. Arguments are
declared individually and bound to caller-owned variables; a call to
Parse() then walks the command-line tokens, converts them to the
appropriate types, and assigns them to the bound variables.


# Declaring Arguments

Four kinds of arguments can be declared:

  - Signals: options like "--help" that abort parsing immediately when
    encountered, so the caller can branch on them.
  - Flags: boolean options; their presence sets the bound variable true.
  - Options: named arguments that take one value of an arbitrary type.
  - Operands: positional arguments, matched by declaration order. An
    operand sink collects all remaining positional values into a slice.

Options are recognized by a single-character short name (prefixed with
"-") and/or a long name (prefixed with "--"). Operands have neither and
are matched purely by position.

	var verbose bool
	var count int = 10
	var files []string

	p := leanarg.NewParser("Repeat input files.", "")
	p.AddSignal('h', "help", "Show this help and exit")
	p.AddFlag(&verbose, 'v', "verbose", "Report progress", false)
	leanarg.AddOption(p, &count, 'c', "count", "N", "Number of repetitions", false)
	leanarg.AddOperandSink(p, &files, "FILE", "Input files", true)

	err := p.ParseCommandLine()

The bound variables must outlive the parse call. Their values at
declaration time serve as defaults: a variable is only written when the
matching argument actually appears on the command line, and the
declaration-time value of an option is what the help text reports as
its default.


# Supported Value Types

Options, operands, and sinks accept any of the built-in types

	string
	int  int8  int16  int32  int64
	uint uint8 uint16 uint32 uint64
	float32 float64

Integers are parsed in decimal, or in hexadecimal if the token contains
an "x" or "X" (as in "0x1f"). Values are range-checked against the
width and signedness of the bound variable; a negative token bound to
an unsigned variable is an error, not a wraparound. Strings are taken
verbatim. In every case the whole token must be consumed.

Other types can be used without modification to this package: a type
whose pointer implements encoding.TextUnmarshaler is decoded through
it, and any remaining type is read with fmt.Fscan, which honors the
fmt.Scanner interface. For default-value display, encoding.TextMarshaler
is honored and all other types print with fmt.Sprint.


# Command-Line Processing

The first input token is taken as the utility name (the conventional
argv[0]); Parse() therefore expects the full argument vector, and
ParseCommandLine() simply passes os.Args.

A value may follow its option as the next token ("-c 9", "--count 9"),
or be merged into the same token: after the separator for long options
("--count=9"), or immediately after the character for short options
("-c9"). Short flags may be combined into one token ("-vx"); a
value-taking option inside a combined token consumes the rest of the
token as its value.

The terminator token "--" ends option recognition: all following tokens
are treated strictly as operand values. Without a terminator, a token
in operand position that looks like an option is an error. A bare "-"
never looks like an option and is an ordinary value.

Prefixes, separator, terminator, and all help-related strings are
configurable through exported fields on the Parser; setting a prefix or
the terminator to its zero value disables that recognition path.


# Errors and Signals

Parse() reports two disjoint failure kinds, both ordinary error values:

	var sig *leanarg.Signal
	if errors.As(err, &sig) {
		// user asked for -h/--help or similar
	}

*Signal carries the short and long name of the signal argument that
fired; it takes precedence over any missing-required-argument failure.
*ParseError carries a descriptive message for malformed input. Parsing
is all-or-nothing: the first problem unwinds the whole call, and bound
variables keep whatever was assigned before the failure.

A Parser may be used for repeated Parse calls; each call starts with
fresh matching state. Note that bound variables are not reset between
calls, and the utility name, once captured, is retained. A single
Parser must not be used from multiple goroutines concurrently.


# Help Output

WriteHelp() renders a help message from the declared arguments:
prolog, usage line, options glossary, operands glossary, and epilog,
word-wrapped to HelpWidth with aligned columns. PrintHelp() writes the
same text to standard error. Rendering is independent of parsing and
can be done at any time.
*/
package leanarg
