package tern

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	presentOK   = color.New(color.FgGreen)
	presentNo   = color.New(color.FgRed)
	presentName = color.New(color.FgCyan)
)

// Present renders a top-of-stack Value for the user: an empty Table is
// `Ok.`, a non-empty Table is one `name: value` line per entry
// with identifiers rehydrated via interner, and None is `No.`. Other
// Value kinds (Goal, Stream, Callable, a bare Term) are rendered with a
// best-effort Stringer-based fallback, useful for the Print opcode and
// for the driver's disassembly stack dump, neither of which is limited
// to post-Next results.
//
// Output is colorized with fatih/color (green for Ok., red for No.),
// which auto-disables color when stdout is not a terminal.
func Present(v Value, interner *Interner) string {
	switch v.Kind {
	case KindNone:
		return presentNo.Sprint("No.")
	case KindTable:
		if v.Table.Len() == 0 {
			return presentOK.Sprint("Ok.")
		}
		var b strings.Builder
		first := true
		v.Table.Range(func(key, value Term) bool {
			if !first {
				b.WriteString("\n")
			}
			first = false
			b.WriteString(presentName.Sprint(rehydrate(key, interner)))
			b.WriteString(": ")
			b.WriteString(rehydrate(value, interner))
			return true
		})
		return b.String()
	case KindTerm:
		return rehydrate(v.Term, interner)
	case KindGoal:
		return "Goal"
	case KindStream:
		return "Stream"
	case KindCallable:
		return fmt.Sprintf("Callable(params=%d)", len(v.Callable.Params))
	default:
		return "?"
	}
}

// rehydrate renders a Term using source names recovered from interner
// where available, falling back to the numeric id for names it never
// registered.
func rehydrate(t Term, interner *Interner) string {
	switch v := t.(type) {
	case Atom:
		return "'" + interner.MustLookup(v.ID)
	case Variable:
		return interner.MustLookup(v.ID)
	case Tuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = rehydrate(e, interner)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%v", t)
	}
}
