// Command repeat prints its operands a number of times. It exists to
// demonstrate the leanarg declaration API, signal handling, and help
// rendering.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/janert/leanarg"
)

const version = "1.0.0"

func main() {
	count := 1
	separator := " "
	upper := false
	var words []string

	p := leanarg.NewParser(
		"Print the given words, several times if asked.",
		"Report bugs to the issue tracker.")

	p.AddSignal('h', "help", "Show this help and exit.")
	p.AddSignal('v', "version", "Show the version and exit.")
	p.AddFlag(&upper, 'u', "upper", "Convert the output to upper case.", false)
	leanarg.AddOption(p, &count, 'n', "count", "N",
		"Number of repetitions.", false)
	leanarg.AddOption(p, &separator, 's', "separator", "SEP",
		"String printed between words.", false)
	leanarg.AddOperandSink(p, &words, "WORD", "Words to print.", true)

	if term.IsTerminal(int(os.Stderr.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
			p.HelpWidth = cols
		}
	}

	if err := p.ParseCommandLine(); err != nil {
		var sig *leanarg.Signal
		if errors.As(err, &sig) {
			switch sig.Long {
			case "version":
				fmt.Println(version)
			default:
				p.WriteHelp(os.Stdout)
			}
			return
		}

		fmt.Fprintln(os.Stderr, color.RedString("repeat: %v", err))
		p.PrintHelp()
		os.Exit(2)
	}

	line := strings.Join(words, separator)
	if upper {
		line = strings.ToUpper(line)
	}
	for i := 0; i < count; i++ {
		fmt.Println(line)
	}
}
