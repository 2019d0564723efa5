package widgets

import (
	"fmt"
	"strings"

	"termpix/frame"
)

// Widget is a frame.Source that can describe itself for logs.
type Widget interface {
	frame.Source
	String() string
	ToString(*strings.Builder, string)
}

func toString[W Widget](w W) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}

// sourceToString prints a nested source. Plain frame.Source values only
// have their type printed.
func sourceToString(buf *strings.Builder, offset string, src frame.Source) {
	if w, ok := src.(Widget); ok {
		w.ToString(buf, offset)
		return
	}
	fmt.Fprintf(buf, "%s%T\n", offset, src)
}
