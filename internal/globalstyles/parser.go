package globalstyles

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DefinedClass records a class selector declared in a stylesheet.
type DefinedClass struct {
	Name string
	File string
}

// ParseStylesheet lexes CSS content and collects the class selectors it
// defines, deduplicated in declaration order. Compound selectors (.a.b),
// selector lists (.a, .b) and pseudo-class variants (.a:hover) all
// contribute their class names. A class selector lexes as a '.' delimiter
// followed by an ident; fractional numbers and url() values tokenize
// differently, so declaration values don't produce false classes.
func ParseStylesheet(content string, filename string) []DefinedClass {
	var classes []DefinedClass
	seen := make(map[string]bool)

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just stop
			break
		}

		if tt != css.DelimToken || len(text) == 0 || text[0] != '.' {
			continue
		}

		tt2, name := lexer.Next()
		if tt2 != css.IdentToken {
			continue
		}
		if !seen[string(name)] {
			seen[string(name)] = true
			classes = append(classes, DefinedClass{Name: string(name), File: filename})
		}
	}

	return classes
}
