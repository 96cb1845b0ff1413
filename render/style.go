package render

import "github.com/teleivo/gopp/token"

// Sequence is an ANSI SGR escape sequence body, the part between "\x1b["
// and the trailing "m". Multiple attributes are combined with ";", e.g.
// "1;34" for bold blue.
type Sequence string

const (
	escape = "\x1b"

	reset Sequence = "0"

	Bold   Sequence = "1"
	Italic Sequence = "3"

	Black   Sequence = "30"
	Red     Sequence = "31"
	Green   Sequence = "32"
	Yellow  Sequence = "33"
	Blue    Sequence = "34"
	Magenta Sequence = "35"
	Cyan    Sequence = "36"
	White   Sequence = "37"
	Default Sequence = "39"
)

// Style maps each syntax token class to the ANSI sequence the colored
// renderer emits for it. A [token.Kind] with no entry renders with no
// escape sequence at all.
type Style map[token.Kind]Sequence

// DefaultStyle is a basic 8-color approximation of the reference
// implementation's GitHubLightStyle (color.py): keyword constants, builtin
// names and numbers in blue, operators in red, function and entity names
// in magenta, variable names in yellow, strings in green, comments dim.
func DefaultStyle() Style {
	return Style{
		token.KeywordConstant: Blue,
		token.BuiltinName:     Blue,
		token.EntityName:      Magenta,
		token.FunctionName:    Magenta,
		token.VariableName:    Yellow,
		token.StringLiteral:   Green,
		token.StringAffix:     Green,
		token.StringEscape:    Cyan,
		token.NumberInt:       Blue,
		token.NumberFloat:     Blue,
		token.Operator:        Red,
		token.Punctuation:     Default,
		token.CommentSingle:   "2",
	}
}
