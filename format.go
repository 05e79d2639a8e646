package bmset

import (
	"strconv"
	"strings"
)

const typeName = "BitmapSet"

// String renders the members in ascending order, e.g. "BitmapSet {0, 1, 8}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteString(typeName)
	sb.WriteString(" {")
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte('}')
	return sb.String()
}
