package parser

import (
	"fmt"
	"strings"
)

// Pos is a 0-indexed (row, column) source position, in Unicode code
// points, measured display-width-agnostic -- parsers report positions in
// this unit regardless of what indexing convention their underlying
// library uses.
type Pos struct {
	Row int
	Col int
}

// ParseError reports a failure to parse a file, with an optional
// caret-annotated source location. Grounded on
// original_source/src/parsing/mod.rs's ParseError/ParseErrorLocation;
// the RON-specific from_ron_error conversion has no equivalent here,
// since synless-go's language file format (internal/langfile) is YAML,
// not RON.
type ParseError struct {
	FileName string
	Message  string
	location *parseErrorLocation
}

type parseErrorLocation struct {
	pos   Pos
	line  string
	label string
}

// WithoutLocation builds a ParseError that names no particular position.
func WithoutLocation(fileName, message string) *ParseError {
	return &ParseError{FileName: fileName, Message: message}
}

// WithLocation builds a ParseError that labels a specific line and
// column of fileContents with label.
func WithLocation(fileName, message, fileContents string, pos Pos, label string) *ParseError {
	lines := strings.Split(fileContents, "\n")
	line := ""
	if pos.Row >= 0 && pos.Row < len(lines) {
		line = lines[pos.Row]
	}
	return &ParseError{
		FileName: fileName,
		Message:  message,
		location: &parseErrorLocation{pos: pos, line: line, label: label},
	}
}

func (e *ParseError) Error() string {
	if e.location == nil {
		return fmt.Sprintf("in %s: %s", e.FileName, e.Message)
	}
	row := e.location.pos.Row + 1
	col := e.location.pos.Col + 1
	spacing := len(fmt.Sprintf("%d", row)) + col
	var b strings.Builder
	fmt.Fprintf(&b, "in %s at %d:%d: %s\n", e.FileName, row, col, e.Message)
	fmt.Fprintf(&b, "%d |%s\n", row, e.location.line)
	fmt.Fprintf(&b, "%*s^ %s", spacing, "", e.location.label)
	return b.String()
}
