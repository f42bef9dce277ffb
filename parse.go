package cssel

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse tokenizes a selector string and rebuilds it through the
// validated append operations, so parsed input is subject to the same
// duplicate and ordering rules as programmatic construction. Combinators
// (descendant whitespace, "+", ">", "~") split the input into compound
// selectors that are folded left-to-right with Combine.
func Parse(input string) (Selector, error) {
	lexer := css.NewLexer(parse.NewInputString(input))

	var (
		acc     Selector // combined selectors folded so far
		haveAcc bool
		pending string // combinator awaiting its right operand
		current Selector
		started bool
	)

	// complete folds the current compound selector into the accumulator.
	complete := func() {
		if haveAcc {
			acc = Combine(acc, pending, current)
		} else {
			acc = current
			haveAcc = true
		}
		current = Selector{}
		started = false
		pending = ""
	}

	// combinator records a combinator token. Whitespace around an
	// explicit combinator collapses into it.
	combinator := func(c string) error {
		if started {
			complete()
			pending = c
			return nil
		}
		if c == " " {
			return nil
		}
		if !haveAcc {
			return fmt.Errorf("combinator %q with no left operand: %w", c, ErrSyntax)
		}
		if pending != "" && pending != " " {
			return fmt.Errorf("combinator %q after %q: %w", c, pending, ErrSyntax)
		}
		pending = c
		return nil
	}

	apply := func(next Selector, err error) error {
		if err != nil {
			return err
		}
		current = next
		started = true
		return nil
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return Selector{}, fmt.Errorf("tokenize %q: %w", input, ErrSyntax)
			}
			break
		}

		text := string(data)
		var err error

		switch tt {
		case css.WhitespaceToken:
			err = combinator(" ")

		case css.CommentToken:
			// skipped

		case css.IdentToken:
			err = apply(current.Element(text))

		case css.HashToken:
			err = apply(current.ID(strings.TrimPrefix(text, "#")))

		case css.DelimToken:
			switch text {
			case ".":
				tt2, name := lexer.Next()
				if tt2 != css.IdentToken {
					return Selector{}, fmt.Errorf("class name expected after '.': %w", ErrSyntax)
				}
				err = apply(current.Class(string(name)))
			case "+", ">", "~":
				err = combinator(text)
			default:
				return Selector{}, fmt.Errorf("unexpected %q: %w", text, ErrSyntax)
			}

		case css.LeftBracketToken:
			body, berr := readUntilBracket(lexer)
			if berr != nil {
				return Selector{}, berr
			}
			err = apply(current.Attr(body))

		case css.ColonToken:
			tt2, name := lexer.Next()
			switch tt2 {
			case css.ColonToken:
				tt3, name3 := lexer.Next()
				if tt3 != css.IdentToken {
					return Selector{}, fmt.Errorf("pseudo-element name expected after '::': %w", ErrSyntax)
				}
				err = apply(current.PseudoElement(string(name3)))
			case css.IdentToken:
				err = apply(current.PseudoClass(string(name)))
			case css.FunctionToken:
				// Functional pseudo-class, e.g. :nth-of-type(even).
				// The function token text includes the opening paren.
				full, ferr := readFunction(lexer, string(name))
				if ferr != nil {
					return Selector{}, ferr
				}
				err = apply(current.PseudoClass(full))
			default:
				return Selector{}, fmt.Errorf("pseudo-class name expected after ':': %w", ErrSyntax)
			}

		default:
			return Selector{}, fmt.Errorf("unexpected token %q: %w", text, ErrSyntax)
		}

		if err != nil {
			return Selector{}, err
		}
	}

	if started {
		complete()
	} else if pending != "" && pending != " " {
		return Selector{}, fmt.Errorf("trailing combinator %q: %w", pending, ErrSyntax)
	}
	if !haveAcc {
		return Selector{}, fmt.Errorf("empty selector: %w", ErrSyntax)
	}
	return acc, nil
}

// readUntilBracket collects the raw body of an attribute selector up to
// the closing bracket.
func readUntilBracket(lexer *css.Lexer) (string, error) {
	var body strings.Builder
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return "", fmt.Errorf("unterminated attribute selector: %w", ErrSyntax)
		}
		if tt == css.RightBracketToken {
			return body.String(), nil
		}
		body.Write(data)
	}
}

// readFunction collects a functional pseudo-class body through its
// matching closing paren, tracking nesting for forms like :not(:is(a)).
func readFunction(lexer *css.Lexer, head string) (string, error) {
	var b strings.Builder
	b.WriteString(head)
	depth := 1
	for depth > 0 {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated functional pseudo-class: %w", ErrSyntax)
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		b.Write(data)
	}
	return b.String(), nil
}
