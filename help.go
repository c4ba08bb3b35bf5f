package leanarg

import (
	"io"
	"os"
	"strings"
)

// PrintHelp writes the help message to standard error.
func (p *Parser) PrintHelp() {
	p.WriteHelp(os.Stderr)
}

// WriteHelp renders the help message and writes it to w in a single
// write. The sections appear in fixed order: prolog, usage line,
// options glossary, operands glossary, epilog. A section whose title
// is empty, or whose argument list is empty, is omitted entirely.
// Rendering does not depend on any previous Parse call.
func (p *Parser) WriteHelp(w io.Writer) error {
	var b strings.Builder

	p.writeParagraph(&b, p.Prolog)
	p.writeUsage(&b)
	p.writeGlossary(&b, p.OptionsTitle, p.options)
	p.writeGlossary(&b, p.OperandsTitle, p.operands)
	p.writeParagraph(&b, p.Epilog)

	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Parser) writeParagraph(b *strings.Builder, paragraph string) {
	if paragraph == "" {
		return
	}

	p.writeWrapped(b, tokenizeWords(paragraph), 0, 0)
	b.WriteString("\n\n")
}

func (p *Parser) writeUsage(b *strings.Builder) {
	if p.UsageTitle == "" {
		return
	}

	var tokens []string

	if p.UtilityName != "" {
		tokens = append(tokens, p.UtilityName)
	}

	if p.OptionsUsage != "" {
		tokens = append(tokens, p.OptionsUsage)
	} else {
		tokens = p.appendUsageTokens(tokens, p.options)
	}

	if p.OperandsUsage != "" {
		tokens = append(tokens, p.OperandsUsage)
	} else {
		tokens = p.appendUsageTokens(tokens, p.operands)
	}

	b.WriteString(p.UsageTitle)
	b.WriteByte('\n')
	b.WriteString(spaces(p.HelpIndent))
	p.writeWrapped(b, tokens, p.HelpIndent, p.HelpIndent*2)
	b.WriteString("\n\n")
}

// AppendUsageTokens synthesizes one usage token per argument: the
// short-prefixed name if present, else the long-prefixed name, else
// nothing; plus the value name for value-taking arguments. Optional
// arguments are bracketed, sinks get a "..." suffix.
func (p *Parser) appendUsageTokens(tokens []string, args []argument) []string {
	for _, arg := range args {
		var token string

		if arg.shortName() != 0 {
			token = string(p.ShortPrefix) + string(arg.shortName())
		} else if arg.longName() != "" {
			token = p.LongPrefix + arg.longName()
		}

		if arg.takesValue() {
			if token != "" {
				token += " "
			}
			token += arg.valueName()
		}

		if !arg.isRequired() {
			token = "[" + token + "]"
		}
		if arg.isSink() {
			token += "..."
		}

		tokens = append(tokens, token)
	}
	return tokens
}

func (p *Parser) writeGlossary(b *strings.Builder, title string, args []argument) {
	if title == "" || len(args) == 0 {
		return
	}

	type entry struct {
		term string
		desc []string
	}

	anyShort := hasAnyShortName(args)
	entries := make([]entry, 0, len(args))
	maxTerm := 0

	for _, arg := range args {
		e := entry{desc: tokenizeWords(arg.description())}

		// Two-space filler keeps long names aligned when only some
		// entries have a short name.
		if anyShort {
			if arg.shortName() == 0 {
				e.term += "  "
			} else {
				e.term += string(p.ShortPrefix) + string(arg.shortName())
			}
		}

		if arg.longName() != "" {
			if anyShort {
				if arg.shortName() != 0 {
					e.term += ", "
				} else {
					e.term += "  "
				}
			}
			e.term += p.LongPrefix + arg.longName()
		}

		if arg.takesValue() {
			if e.term != "" {
				e.term += " "
			}
			e.term += arg.valueName()
		}

		if p.DefaultIntro != "" {
			if value := arg.defaultText(); value != "" {
				e.desc = append(e.desc, "("+p.DefaultIntro+value+")")
			}
		}

		if len(e.term) > maxTerm {
			maxTerm = len(e.term)
		}
		entries = append(entries, e)
	}

	b.WriteString(title)
	b.WriteByte('\n')

	tab := p.HelpIndent + maxTerm + p.HelpIndent
	for _, e := range entries {
		b.WriteString(spaces(p.HelpIndent))
		b.WriteString(e.term)
		b.WriteString(spaces(tab - p.HelpIndent - len(e.term)))
		p.writeWrapped(b, e.desc, tab, tab)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
}

func hasAnyShortName(args []argument) bool {
	for _, arg := range args {
		if arg.shortName() != 0 {
			return true
		}
	}
	return false
}

// TokenizeWords splits text into word tokens, collapsing runs of
// plain spaces. Each literal newline becomes its own "\n" token, so
// forced breaks and blank lines survive wrapping.
func tokenizeWords(text string) []string {
	var tokens []string

	for i := 0; i < len(text); {
		switch text[i] {
		case ' ':
			i++
		case '\n':
			tokens = append(tokens, "\n")
			i++
		default:
			j := i
			for j < len(text) && text[j] != ' ' && text[j] != '\n' {
				j++
			}
			tokens = append(tokens, text[i:j])
			i = j
		}
	}

	return tokens
}

// WriteWrapped emits tokens left to right, breaking the line before a
// token that would exceed HelpWidth. The break only happens when the
// position is already past the hanging indent, so a single overlong
// token still lands at the start of a line instead of breaking
// forever. After a break the line is reseeded with hangingIndent
// spaces; "\n" tokens break unconditionally.
func (p *Parser) writeWrapped(b *strings.Builder, tokens []string,
	initialPos, hangingIndent int) {

	width := p.HelpWidth
	if width < 0 {
		width = 0
	}

	pos, pad := initialPos, 0
	for _, token := range tokens {
		isNewline := token == "\n"
		isOverflow := pos+pad+len(token) > width

		if isNewline || (isOverflow && pos > hangingIndent) {
			b.WriteByte('\n')
			pos = 0
			pad = hangingIndent

			if isNewline {
				continue
			}
		}

		b.WriteString(spaces(pad))
		b.WriteString(token)
		pos += pad + len(token)
		pad = 1
	}
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
