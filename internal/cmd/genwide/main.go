// Command genwide generates the oversized bitmap types from a single template.
//
// Usage (see oversized/doc.go):
//
//	go run ../internal/cmd/genwide -o bitmaps_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

type size struct {
	Name   string
	Suffix string
	Bits   int
}

func (s size) Words() int { return s.Bits / 64 }

var sizes = []size{
	{Name: "Bitmap256", Suffix: "256", Bits: 256},
	{Name: "Bitmap512", Suffix: "512", Bits: 512},
	{Name: "Bitmap1024", Suffix: "1024", Bits: 1024},
	{Name: "Bitmap2048", Suffix: "2048", Bits: 2048},
	{Name: "Bitmap4096", Suffix: "4096", Bits: 4096},
	{Name: "BitmapKB", Suffix: "KB", Bits: 8192},
}

const header = `// Code generated by genwide; DO NOT EDIT.

package oversized

import (
	"context"
	"iter"

	"github.com/hupe1980/fixedbitmaps"
	"github.com/hupe1980/fixedbitmaps/internal/words"
)
`

var body = template.Must(template.New("wide").Parse(`
// {{.Name}} is a fixed bitmap of {{.Bits}} bits stored as {{.Words}} words,
// most significant word first. A word array converts with {{.Name}}(words).
type {{.Name}} [{{.Words}}]uint64

// {{.Name}}Width is the number of bits in a {{.Name}}.
const {{.Name}}Width = {{.Bits}}

// FromWords{{.Suffix}} wraps w, most significant word first.
func FromWords{{.Suffix}}(w [{{.Words}}]uint64) {{.Name}} { return {{.Name}}(w) }

// FromSet{{.Suffix}} returns a {{.Name}} with only the bit at index set.
func FromSet{{.Suffix}}(index uint) ({{.Name}}, error) {
	var b {{.Name}}
	if err := words.Set(b[:], index, true); err != nil {
		return {{.Name}}{}, err
	}
	return b, nil
}

// Filled{{.Suffix}} returns a {{.Name}} with every bit set to value.
func Filled{{.Suffix}}(value bool) {{.Name}} {
	var b {{.Name}}
	words.Fill(b[:], value)
	return b
}

func (b {{.Name}}) Width() uint { return {{.Name}}Width }

func (b {{.Name}}) Words() [{{.Words}}]uint64 { return b }

func (b {{.Name}}) Get(index uint) (bool, error) { return words.Get(b[:], index) }

func (b *{{.Name}}) Set(index uint, value bool) error { return words.Set(b[:], index, value) }

func (b {{.Name}}) And(o {{.Name}}) {{.Name}} {
	words.And(b[:], o[:])
	return b
}

func (b {{.Name}}) Or(o {{.Name}}) {{.Name}} {
	words.Or(b[:], o[:])
	return b
}

func (b {{.Name}}) Xor(o {{.Name}}) {{.Name}} {
	words.Xor(b[:], o[:])
	return b
}

func (b {{.Name}}) AndWords(o [{{.Words}}]uint64) {{.Name}} { return b.And(o) }

func (b {{.Name}}) OrWords(o [{{.Words}}]uint64) {{.Name}} { return b.Or(o) }

func (b {{.Name}}) XorWords(o [{{.Words}}]uint64) {{.Name}} { return b.Xor(o) }

func (b {{.Name}}) Not() {{.Name}} {
	words.Not(b[:])
	return b
}

// AddWord adds x, carrying across words. A carry out of the top word wraps
// around and is reported on the default logger.
func (b {{.Name}}) AddWord(x uint64) {{.Name}} {
	if words.AddWord(b[:], x) {
		fixedbitmaps.DefaultLogger().LogOverflow(context.Background(), "add", {{.Name}}Width, x)
	}
	return b
}

func (b {{.Name}}) Count() int { return words.Count(b[:]) }

// Compare orders bitmaps by the number they hold and returns -1, 0 or +1.
func (b {{.Name}}) Compare(o {{.Name}}) int { return words.Compare(b[:], o[:]) }

func (b {{.Name}}) Less(o {{.Name}}) bool { return b.Compare(o) < 0 }

func (b {{.Name}}) Ones() iter.Seq[uint] { return words.Ones(b[:]) }

func (b {{.Name}}) String() string { return words.Format(b[:]) }
`))

func main() {
	out := flag.String("o", "bitmaps_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString(header)
	for _, s := range sizes {
		if err := body.Execute(&buf, s); err != nil {
			log.Fatalf("genwide: %v", err)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("genwide: format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("genwide: %v", err)
	}
	fmt.Fprintf(os.Stderr, "genwide: wrote %d types to %s\n", len(sizes), *out)
}
