// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"

	"github.com/thatcatcamp/forewind/internal/vars"
)

// ErrInvalidCSS is returned when a stylesheet cannot be tokenized
var ErrInvalidCSS = errors.New("invalid css")

// ParseCSS extracts the custom properties declared in a stylesheet, grouped
// by the rule that declares them. Blocks and declarations keep source order;
// a selector seen twice is merged into its first block.
func ParseCSS(src string) ([]Block, error) {
	var (
		blocks []Block
		index  = make(map[string]int)
		stack  []string
		buf    strings.Builder
		parens int
	)

	declare := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if len(stack) == 0 {
			return
		}
		name, value, ok := strings.Cut(text, ":")
		if !ok {
			return
		}
		name = strings.TrimSpace(name)
		if !strings.HasPrefix(name, "--") {
			return
		}
		selector := stack[len(stack)-1]
		i, seen := index[selector]
		if !seen {
			i = len(blocks)
			index[selector] = i
			blocks = append(blocks, Block{Selector: selector, Vars: vars.NewMap()})
		}
		blocks[i].Vars.Set(name, strings.TrimSpace(value))
	}

	s := scanner.New(src)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return blocks, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidCSS, tok.Line, tok.Column, tok.Value)
		case scanner.TokenComment:
			continue
		case scanner.TokenS:
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			continue
		case scanner.TokenFunction:
			parens++
		case scanner.TokenChar:
			switch tok.Value {
			case "(":
				parens++
			case ")":
				parens--
			case "{":
				if parens == 0 {
					stack = append(stack, strings.TrimSpace(buf.String()))
					buf.Reset()
					continue
				}
			case "}":
				if parens == 0 {
					declare()
					if len(stack) > 0 {
						stack = stack[:len(stack)-1]
					}
					continue
				}
			case ";":
				if parens == 0 {
					declare()
					continue
				}
			}
		}
		buf.WriteString(tok.Value)
	}
}
