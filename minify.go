package globalstyles

import (
	"regexp"
	"strings"

	"github.com/dchest/cssmin"
)

// Minifier is a named minification strategy.
type Minifier interface {
	Name() string
	Apply(css string) (string, error)
}

// Maker is a function which accepts arguments for a minifier and returns a
// new instance of it.
type Maker func(args []string) Minifier

// makers stores builtin minifier makers addressed by their names.
var makers = make(map[string]Maker)

// RegisterMinifier registers a new minifier maker.
func RegisterMinifier(name string, maker Maker) {
	makers[name] = maker
}

// MakeMinifier creates a new minifier by name with the given arguments.
// It returns nil if it can't find a minifier maker with such name.
func MakeMinifier(name string, args []string) Minifier {
	maker := makers[name]
	if maker == nil {
		return nil
	}
	return maker(args)
}

func init() {
	RegisterMinifier("builtin", func([]string) Minifier {
		return builtinMinifier{}
	})
	RegisterMinifier("cssmin", func([]string) Minifier {
		return yuiMinifier{}
	})
}

var (
	// comments matches /* ... */ non-greedily; an internal * that is not
	// immediately followed by / must not terminate the block.
	comments          = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineBreaks        = regexp.MustCompile("[\r\n\t]")
	aroundPunctuation = regexp.MustCompile(`\s*([{}:;,])\s*`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	trailingSemis     = regexp.MustCompile(`;+}`)
)

// Minify strips comments and collapses redundant whitespace and syntax from
// a stylesheet. The transformations run in a fixed order:
//
//  1. remove comment blocks
//  2. remove carriage returns, line feeds and tabs
//  3. remove whitespace around { } : ; ,
//  4. collapse remaining whitespace runs to a single space
//  5. drop semicolons that precede a closing brace
//  6. trim the result
//
// Minify is total and idempotent; invalid CSS passes through the same
// transformations without error.
func Minify(css string) string {
	out := comments.ReplaceAllString(css, "")
	out = lineBreaks.ReplaceAllString(out, "")
	out = aroundPunctuation.ReplaceAllString(out, "$1")
	out = whitespaceRuns.ReplaceAllString(out, " ")
	out = trailingSemis.ReplaceAllString(out, "}")
	return strings.TrimSpace(out)
}

// builtinMinifier is the default strategy, backed by Minify.
type builtinMinifier struct{}

func (builtinMinifier) Name() string { return "builtin" }

func (builtinMinifier) Apply(css string) (string, error) {
	return Minify(css), nil
}

// yuiMinifier delegates to the YUI-style compressor from
// github.com/dchest/cssmin.
type yuiMinifier struct{}

func (yuiMinifier) Name() string { return "cssmin" }

func (yuiMinifier) Apply(css string) (string, error) {
	return string(cssmin.Minify([]byte(css))), nil
}
