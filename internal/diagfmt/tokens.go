package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"declet/internal/token"
)

// TokenOutput is the JSON form of one token.
type TokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
}

// FormatTokensPretty prints the token stream as an aligned table:
// TOKEN, LEXEME, LINE. The EOF token closes the table.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	kindWidth := len("TOKEN")
	textWidth := len("LEXEME")
	for _, tok := range tokens {
		if n := runewidth.StringWidth(tok.Kind.String()); n > kindWidth {
			kindWidth = n
		}
		if n := runewidth.StringWidth(tok.Text); n > textWidth {
			textWidth = n
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
	}

	fmt.Fprintf(w, "%s  %s  %s\n", pad("TOKEN", kindWidth), pad("LEXEME", textWidth), "LINE")
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s  %s  %d\n", pad(tok.Kind.String(), kindWidth), pad(tok.Text, textWidth), tok.Line)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
