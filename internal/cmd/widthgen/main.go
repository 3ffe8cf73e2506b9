// Package main generates the predefined smallbitset layouts and the matching
// conformance case list.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
)

const header = "// Code generated by widthgen. DO NOT EDIT.\n\n"

var (
	maxWidth = flag.Int("max", 128, "generate every width from 1 to max")
	extra    = flag.String("extra", "192,256,512,1024", "comma-separated additional widths")
	output   = flag.String("o", "widths_gen.go", "layout output file")
	cases    = flag.String("cases", "conformance/cases_gen.go", "conformance case output file (empty to skip)")
)

func main() {
	flag.Parse()

	widths, err := collect(*maxWidth, *extra)
	if err != nil {
		fmt.Fprintf(os.Stderr, "widthgen: %v\n", err)
		os.Exit(2)
	}

	if err := write(*output, layouts(widths)); err != nil {
		fmt.Fprintf(os.Stderr, "widthgen: %v\n", err)
		os.Exit(1)
	}
	if *cases != "" {
		if err := write(*cases, caseList(*maxWidth, widths)); err != nil {
			fmt.Fprintf(os.Stderr, "widthgen: %v\n", err)
			os.Exit(1)
		}
	}
}

func collect(maxW int, extraList string) ([]int, error) {
	if maxW < 1 {
		return nil, fmt.Errorf("max must be positive, got %d", maxW)
	}
	widths := make([]int, 0, maxW+4)
	for n := 1; n <= maxW; n++ {
		widths = append(widths, n)
	}
	for _, f := range strings.Split(extraList, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n <= maxW {
			return nil, fmt.Errorf("extra width %q must be an integer above %d", f, maxW)
		}
		widths = append(widths, n)
	}
	return widths, nil
}

// storage returns the array type for an n-bit layout: bytes below one
// register, uint64 words from there on.
func storage(n int) string {
	nb := (n + 7) / 8
	if nb < 8 {
		return fmt.Sprintf("[%d]byte", nb)
	}
	return fmt.Sprintf("[%d]uint64", (nb+7)/8)
}

func layouts(widths []int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package smallbitset\n")
	for _, n := range widths {
		fmt.Fprintf(&buf, "\n// W%d is the layout of a %d-bit Set.\n", n, n)
		fmt.Fprintf(&buf, "type W%d %s\n\n", n, storage(n))
		fmt.Fprintf(&buf, "// Width implements Layout.\n")
		fmt.Fprintf(&buf, "func (W%d) Width() int { return %d }\n", n, n)
	}
	return buf.Bytes()
}

func caseList(maxW int, widths []int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package conformance\n\n")
	buf.WriteString("import \"github.com/hupe1980/smallbitset\"\n\n")
	fmt.Fprintf(&buf, "// Standard returns one Case per predefined width from 1 to %d.\n", maxW)
	buf.WriteString("func Standard() []Case {\n\treturn []Case{\n")
	for _, n := range widths[:maxW] {
		fmt.Fprintf(&buf, "\t\tFor[smallbitset.W%d](),\n", n)
	}
	buf.WriteString("\t}\n}\n\n")
	buf.WriteString("// Extended returns one Case per predefined width above the standard range.\n")
	buf.WriteString("func Extended() []Case {\n\treturn []Case{\n")
	for _, n := range widths[maxW:] {
		fmt.Fprintf(&buf, "\t\tFor[smallbitset.W%d](),\n", n)
	}
	buf.WriteString("\t}\n}\n")
	return buf.Bytes()
}

func write(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
