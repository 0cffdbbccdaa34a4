package output

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/raven-betanet/readbyte/internal/bytereader"
)

// Format represents the output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &bytereader.ArgumentError{
			Arg:   "format",
			Value: s,
			Err:   fmt.Errorf("unsupported output format (valid: %s, %s)", FormatText, FormatJSON),
		}
	}
}

// Formatter writes read results in a fixed format
type Formatter struct {
	format Format
}

// NewFormatter creates a formatter for the given format
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Write renders result to w
func (f *Formatter) Write(w io.Writer, result bytereader.Result) error {
	switch f.format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText, "":
		_, err := fmt.Fprintln(w, Line(result))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// Line returns the single text line describing result
func Line(result bytereader.Result) string {
	b, ok := result.Byte()
	if !ok {
		return fmt.Sprintf("No data at position %d or beyond the end of the file.", result.Offset)
	}
	return fmt.Sprintf("%d: %s (Hex: %s)", result.Offset, Raw(b), Hex(b))
}

// Hex returns the two lowercase hex digits of b
func Hex(b byte) string {
	return hex.EncodeToString([]byte{b})
}

// Raw returns b as a byte literal, e.g. b'A', b'\x00' or b"'".
func Raw(b byte) string {
	switch b {
	case '\'':
		return `b"'"`
	case '\\':
		return `b'\\'`
	case '\t':
		return `b'\t'`
	case '\n':
		return `b'\n'`
	case '\r':
		return `b'\r'`
	}
	if b < 0x20 || b >= 0x7f {
		return fmt.Sprintf(`b'\x%02x'`, b)
	}
	return "b'" + string(rune(b)) + "'"
}

type jsonResult struct {
	Position int64  `json:"position"`
	Found    bool   `json:"found"`
	Value    *byte  `json:"value,omitempty"`
	Raw      string `json:"raw,omitempty"`
	Hex      string `json:"hex,omitempty"`
}

func writeJSON(w io.Writer, result bytereader.Result) error {
	out := jsonResult{Position: result.Offset}
	if b, ok := result.Byte(); ok {
		out.Found = true
		out.Value = &b
		out.Raw = Raw(b)
		out.Hex = Hex(b)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
