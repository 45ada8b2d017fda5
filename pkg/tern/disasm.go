package tern

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	disasmMark = color.New(color.FgRed, color.Bold)
	disasmDim  = color.New(color.FgHiBlack)
)

// DisassemblyReport renders the diagnostic dump for a runtime error: a
// disassembly window of instructions around the failing ip per
// activation frame, deepest frame first, followed by a dump of the value
// stack. The window radius defaults to 10 (WithWindow).
func DisassemblyReport(vm *VM, rerr *RuntimeError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", disasmMark.Sprint(rerr.Error()))

	for i := len(vm.Frames) - 1; i >= 0; i-- {
		frame := vm.Frames[i]
		fmt.Fprintf(&b, "frame %d (ip=%d):\n", i, frame.IP)
		b.WriteString(disassembleWindow(frame.Instrs, frame.IP, vm.window))
	}

	b.WriteString("stack:\n")
	for i := len(vm.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "  [%d] %s\n", i, Present(vm.Stack[i], vm.Interner))
	}

	return b.String()
}

func disassembleWindow(instrs []Instr, ip, window int) string {
	if window <= 0 {
		window = 10
	}
	lo := ip - window
	if lo < 0 {
		lo = 0
	}
	hi := ip + window
	if hi >= len(instrs) {
		hi = len(instrs) - 1
	}

	var b strings.Builder
	for i := lo; i <= hi; i++ {
		line := fmt.Sprintf("  %4d: %s", i, instrs[i].String())
		if i == ip {
			b.WriteString(disasmMark.Sprint(line) + "\n")
		} else {
			b.WriteString(disasmDim.Sprint(line) + "\n")
		}
	}
	return b.String()
}
