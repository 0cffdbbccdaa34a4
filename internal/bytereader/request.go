package bytereader

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Request identifies the byte to read
type Request struct {
	Filename string `json:"filename"`
	Position int64  `json:"position"`
}

var (
	// ErrNegativeOffset is wrapped by ArgumentError when a position before the start of the file is requested
	ErrNegativeOffset = errors.New("offset must not be negative")

	errMissingFilename = errors.New("filename is required")
	errNotAnInteger    = errors.New("not a valid integer")
)

// ParseRequest builds a Request from the positional arguments <filename> <position>
func ParseRequest(args []string) (Request, error) {
	if len(args) != 2 {
		return Request{}, &ArgumentError{
			Arg: "arguments",
			Err: fmt.Errorf("expected <filename> <position>, received %d argument(s)", len(args)),
		}
	}

	filename := args[0]
	if filename == "" {
		return Request{}, &ArgumentError{Arg: "filename", Err: errMissingFilename}
	}

	position, err := ParsePosition(args[1])
	if err != nil {
		return Request{}, err
	}

	return Request{Filename: filename, Position: position}, nil
}

// digitGroups matches a signed base-10 integer whose digits may be grouped
// with single underscores, e.g. "1_000".
var digitGroups = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParsePosition parses a base-10 byte offset. Surrounding whitespace, a
// leading sign and underscores between digits are accepted; negative values
// are rejected.
func ParsePosition(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if !digitGroups.MatchString(trimmed) {
		return 0, &ArgumentError{Arg: "position", Value: s, Err: errNotAnInteger}
	}

	position, err := strconv.ParseInt(strings.ReplaceAll(trimmed, "_", ""), 10, 64)
	if err != nil {
		cause := errNotAnInteger
		if errors.Is(err, strconv.ErrRange) {
			cause = strconv.ErrRange
		}
		return 0, &ArgumentError{Arg: "position", Value: s, Err: cause}
	}
	if position < 0 {
		return 0, &ArgumentError{Arg: "position", Value: s, Err: ErrNegativeOffset}
	}
	return position, nil
}
