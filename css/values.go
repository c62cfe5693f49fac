package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"tabletpl/templates"
)

// CheckValue makes sure declaration value cannot escape its declaration:
// no separators, blocks, at-rules, comments, markup or unbalanced groups.
// Values are otherwise passed to the stylesheet verbatim.
func CheckValue(value string) error {
	if len(bytes.TrimSpace([]byte(value))) == 0 {
		return fmt.Errorf("blank value: %w", templates.ErrMalformedRule)
	}

	lexer := css.NewLexer(parse.NewInput(bytes.NewBufferString(value)))

	var depth int
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("value %q: %v: %w", value, err, templates.ErrMalformedRule)
			}
			if depth != 0 {
				return fmt.Errorf("value %q has unbalanced parentheses: %w", value, templates.ErrMalformedRule)
			}
			return nil
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("value %q has unbalanced parentheses: %w", value, templates.ErrMalformedRule)
			}
		case css.ColonToken, css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.AtKeywordToken, css.CommentToken, css.CDOToken, css.CDCToken,
			css.BadStringToken, css.BadURLToken:
			return fmt.Errorf("value %q contains forbidden token %q: %w", value, string(data), templates.ErrMalformedRule)
		case css.DelimToken:
			if bytes.Equal(data, []byte("<")) || bytes.Equal(data, []byte("\\")) {
				return fmt.Errorf("value %q contains forbidden token %q: %w", value, string(data), templates.ErrMalformedRule)
			}
		}
	}
}
