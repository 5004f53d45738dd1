package errors

import (
	"fmt"
	"strings"
)

// ColorFormatError reports a color specification that matches none of the
// accepted notations (#RGB, #RRGGBB, rgb(r,g,b), (r,g,b), or a known name).
type ColorFormatError struct {
	Spec string
}

// NewColorFormatError constructs a ColorFormatError for the given input.
func NewColorFormatError(spec string) error {
	return &ColorFormatError{Spec: spec}
}

func (e *ColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unrecognized color %q\nHint: use #RGB, #RRGGBB, rgb(r,g,b), (r,g,b), or a named color such as \"deeppink\"", e.Spec)
}

// ColorRangeError reports a numeric color channel outside 0-255.
type ColorRangeError struct {
	Spec    string
	Channel string
	Value   int
}

// NewColorRangeError constructs a ColorRangeError for one offending channel.
func NewColorRangeError(spec, channel string, value int) error {
	return &ColorRangeError{Spec: spec, Channel: channel, Value: value}
}

func (e *ColorRangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("color %q: %s channel %d is out of range\nHint: each channel must be between 0 and 255", e.Spec, e.Channel, e.Value)
}

// StyleNotFoundError reports a border-style lookup for a name the registry
// does not contain. Valid carries the full catalog so the message can point
// the caller at a working spelling.
type StyleNotFoundError struct {
	Name  string
	Valid []string
}

// NewStyleNotFoundError constructs a StyleNotFoundError listing valid names.
func NewStyleNotFoundError(name string, valid []string) error {
	return &StyleNotFoundError{Name: name, Valid: valid}
}

func (e *StyleNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("border style %q not found\nHint: valid styles are: %s", e.Name, strings.Join(e.Valid, ", "))
}

// LayoutError reports structurally invalid frame sizing: negative widths or
// padding, a minimum above the maximum, or an interior that cannot hold a
// single column. It is raised before any output line is produced.
type LayoutError struct {
	Message string
}

// NewLayoutError constructs a LayoutError.
func NewLayoutError(format string, args ...any) error {
	return &LayoutError{Message: fmt.Sprintf(format, args...)}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("layout error: %s", e.Message)
}

// ParseError represents a theme-file parsing failure with optional line
// metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
