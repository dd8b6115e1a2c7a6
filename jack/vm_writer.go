package jack

import (
	"bufio"
	"fmt"
	"io"
)

// VMWriter emits textual VM instructions, one per line.
type VMWriter struct {
	out *bufio.Writer
}

// NewVMWriter wraps w as a VM instruction sink.
func NewVMWriter(w io.Writer) *VMWriter {
	return &VMWriter{out: bufio.NewWriter(w)}
}

func (w *VMWriter) writeLine(line string) {
	fmt.Fprintln(w.out, line)
}

func (w *VMWriter) Push(segment VMSegment, index MachineWord) {
	w.writeLine(fmt.Sprintf("push %s %d", segment, index))
}

func (w *VMWriter) Pop(segment VMSegment, index MachineWord) {
	w.writeLine(fmt.Sprintf("pop %s %d", segment, index))
}

func (w *VMWriter) Arithmetic(op VMOp) {
	w.writeLine(string(op))
}

func (w *VMWriter) Label(name string) {
	w.writeLine("label " + name)
}

func (w *VMWriter) Goto(name string) {
	w.writeLine("goto " + name)
}

func (w *VMWriter) IfGoto(name string) {
	w.writeLine("if-goto " + name)
}

func (w *VMWriter) Call(name string, nArgs MachineWord) {
	w.writeLine(fmt.Sprintf("call %s %d", name, nArgs))
}

func (w *VMWriter) Function(name string, nLocals MachineWord) {
	w.writeLine(fmt.Sprintf("function %s %d", name, nLocals))
}

func (w *VMWriter) Return() {
	w.writeLine("return")
}

// OpenBlock, CloseBlock and WriteTerminal are XML-only operations; on the
// VM sink they are no-ops so the engine can call them unconditionally.
func (w *VMWriter) OpenBlock(tag string)          {}
func (w *VMWriter) CloseBlock(tag string)         {}
func (w *VMWriter) WriteTerminal(tag, text string) {}

func (w *VMWriter) Close() error {
	return w.out.Flush()
}
