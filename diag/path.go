package diag

import (
	"strings"

	"github.com/rigado/blerpc"
)

// fieldPath joins the field names an error was wrapped with, outermost first.
func fieldPath(err error) string {
	var parts []string

	for err != nil {
		if fm, ok := err.(*blerpc.FieldMissingError); ok {
			parts = append(parts, fm.Name)
			break
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		inner := u.Unwrap()
		if inner == nil {
			break
		}
		if msg, ok := wrapMessage(err, inner); ok {
			parts = append(parts, msg)
		}
		err = inner
	}
	return strings.Join(parts, ".")
}

// wrapMessage recovers the message errors.Wrap attached around inner.
func wrapMessage(outer, inner error) (string, bool) {
	o, i := outer.Error(), inner.Error()
	if o == i || !strings.HasSuffix(o, ": "+i) {
		return "", false
	}
	return strings.TrimSuffix(o, ": "+i), true
}
