// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/forewind/internal/vars"
)

// RootBlock wraps variables in a plain :root rule
func RootBlock(m *vars.Map) Block {
	return Block{Selector: ":root", Vars: m}
}

// WriteBlocks renders blocks as CSS rules, one declaration per line
func WriteBlocks(b *strings.Builder, blocks []Block) {
	for _, block := range blocks {
		fmt.Fprintf(b, "%s {\n", block.Selector)
		for _, v := range block.Vars.Vars() {
			fmt.Fprintf(b, "  %s: %s;\n", v.Key, v.Value)
		}
		b.WriteString("}\n\n")
	}
}

// GenerateCSS renders the blocks followed by the base element styles that
// consume the body variables
func GenerateCSS(blocks []Block) string {
	var b strings.Builder
	WriteBlocks(&b, blocks)
	b.WriteString(baseStyles)
	return b.String()
}

const baseStyles = `/* Base element styles */
html {
  height: 100%;
}

body {
  height: 100%;
  background-color: rgb(var(--body-bg-light));
  color: rgb(var(--body-text-light));
}

.dark body {
  background-color: rgb(var(--body-bg-dark));
  color: rgb(var(--body-text-dark));
}

@keyframes fade-in-down {
  0% {
    opacity: 0;
    transform: translateY(-10px);
  }
  100% {
    opacity: 1;
    transform: translateY(0);
  }
}

/* Utilities */
.text-md { font-size: 1.0rem; line-height: 1.5; }
.text-dark { color: rgb(var(--body-text-light)); }
.text-light { color: rgb(var(--body-text-dark)); }
.body-dark { background-color: rgb(var(--body-bg-dark)); }
.body-light { background-color: rgb(var(--body-bg-light)); }
.small-caps { font-variant: all-small-caps; }
.fade-in-down { animation: fade-in-down 0.3s ease-out; }
`
