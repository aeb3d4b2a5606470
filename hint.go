package globalstyles

import (
	"regexp"
	"strings"
)

var (
	// HintLine matches one @hint annotation per line: optional leading
	// whitespace, an optional comment-start or continuation marker, the
	// @hint token, a class name, and an optional |-separated description.
	// A trailing */ and anything after it is ignored. The name class
	// excludes | so that an unspaced separator ("@hint a|first") still
	// splits into name and description; valid class names never contain |,
	// so every well-formed annotation matches the documented grammar
	// byte for byte.
	HintLine = regexp.MustCompile(`(?m)^\s*/?\*+\s@hint\s+(?P<name>[^|\s]+)\s*(?:\|\s*(?P<description>.*?)\s*)?(?:\*/.*)?$`)

	// ValidClassName constrains annotated class names. Names that don't
	// match are skipped, not reported.
	ValidClassName = regexp.MustCompile(`^[A-Za-z][\w-]*$`)

	// commentBlock extracts /* ... */ blocks non-greedily so that embedded
	// asterisks don't terminate the match early.
	commentBlock = regexp.MustCompile(`(?s)/\*(.*?)\*/`)

	// classLine matches one @class definition inside a comment block.
	classLine = regexp.MustCompile(`(?m)^[ \t]*\*?[ \t]*@class\s+(.+)$`)
)

// Hint pairs a class name with its description.
type Hint struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AnnotatedClass is a class exposed through the block-oriented @class
// dialect. Unlike hints, annotated classes are collected as a list and
// duplicates are preserved.
type AnnotatedClass struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HintSet is an ordered mapping of class name to description. Iteration
// order is the scan order of the first occurrence of each name; a later
// hint for the same name overrides the description but keeps the original
// position.
type HintSet struct {
	names  []string
	byName map[string]string
}

// Len returns the number of distinct hinted classes.
func (s *HintSet) Len() int {
	return len(s.names)
}

// Names returns the hinted class names in scan order.
func (s *HintSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Description returns the description registered for a class name.
func (s *HintSet) Description(name string) (string, bool) {
	description, ok := s.byName[name]
	return description, ok
}

// Hints returns the set as an ordered slice of Hint records.
func (s *HintSet) Hints() []Hint {
	hints := make([]Hint, 0, len(s.names))
	for _, name := range s.names {
		hints = append(hints, Hint{Name: name, Description: s.byName[name]})
	}
	return hints
}

// add records a hint, overriding the description on duplicates.
func (s *HintSet) add(name, description string) {
	if _, exists := s.byName[name]; !exists {
		s.names = append(s.names, name)
	}
	s.byName[name] = description
}

// ParseHints scans CSS text for line-oriented @hint annotations and returns
// them as an ordered set. Malformed annotations and invalid class names are
// skipped silently; no input causes an error.
func ParseHints(css string) *HintSet {
	hints := &HintSet{byName: make(map[string]string)}

	for _, match := range HintLine.FindAllStringSubmatch(css, -1) {
		name := strings.TrimSpace(match[1])
		if !ValidClassName.MatchString(name) {
			continue
		}
		hints.add(name, strings.TrimSpace(match[2]))
	}

	return hints
}

// ParseAnnotatedClasses scans CSS text for block-oriented @class
// annotations. Every /* ... */ block is searched for @class lines; each
// definition is split on the first | into name and optional description.
// Duplicate names yield separate entries.
func ParseAnnotatedClasses(css string) []AnnotatedClass {
	var classes []AnnotatedClass

	for _, block := range commentBlock.FindAllStringSubmatch(css, -1) {
		for _, line := range classLine.FindAllStringSubmatch(block[1], -1) {
			name, description := splitDefinition(line[1])
			if !ValidClassName.MatchString(name) {
				continue
			}
			classes = append(classes, AnnotatedClass{Name: name, Description: description})
		}
	}

	return classes
}

// splitDefinition splits a @class definition on the first | separator.
func splitDefinition(definition string) (name, description string) {
	name, description, _ = strings.Cut(definition, "|")
	return strings.TrimSpace(name), strings.TrimSpace(description)
}
