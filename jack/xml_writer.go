package jack

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const xmlIndentWidth = 2

var xmlEscapes = []struct{ from, to string }{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
}

func escapeXML(s string) string {
	for _, e := range xmlEscapes {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}

// XMLWriter emits a tagged, two-space-indented parse trace instead of VM
// code. Indentation accumulates two spaces per open nonterminal block and
// unwinds on close.
type XMLWriter struct {
	out    *bufio.Writer
	indent string
}

// NewXMLWriter wraps w as an XML trace sink.
func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{out: bufio.NewWriter(w)}
}

func (w *XMLWriter) OpenBlock(tag string) {
	fmt.Fprintf(w.out, "%s<%s>\n", w.indent, tag)
	w.indent += strings.Repeat(" ", xmlIndentWidth)
}

func (w *XMLWriter) CloseBlock(tag string) {
	w.indent = w.indent[:len(w.indent)-xmlIndentWidth]
	fmt.Fprintf(w.out, "%s</%s>\n", w.indent, tag)
}

func (w *XMLWriter) WriteTerminal(tag, text string) {
	fmt.Fprintf(w.out, "%s<%s> %s </%s>\n", w.indent, tag, escapeXML(text), tag)
}

// VM-producing operations are no-ops on the XML sink; grammar-level
// structure calls (OpenBlock/CloseBlock/WriteTerminal) carry all of the
// trace's content.
func (w *XMLWriter) Push(segment VMSegment, index MachineWord) {}
func (w *XMLWriter) Pop(segment VMSegment, index MachineWord)  {}
func (w *XMLWriter) Arithmetic(op VMOp)                        {}
func (w *XMLWriter) Label(name string)                         {}
func (w *XMLWriter) Goto(name string)                          {}
func (w *XMLWriter) IfGoto(name string)                        {}
func (w *XMLWriter) Call(name string, nArgs MachineWord)       {}
func (w *XMLWriter) Function(name string, nLocals MachineWord) {}
func (w *XMLWriter) Return()                                   {}

func (w *XMLWriter) Close() error {
	return w.out.Flush()
}
