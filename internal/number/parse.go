// Package number converts digit-only token text into float64 values.
//
// The conversion is a left-to-right positional accumulation in float64, not a
// call into strconv: the accepted domain is exactly the non-negative integers
// spelled with ASCII digits, and every other byte is an explicit rejection.
package number

// ParseUnsigned accumulates s as a base-10 unsigned integer in float64.
//
// The accumulator starts at 0.0 and for each byte computes acc = acc*10 + d.
// Any byte outside '0'..'9' rejects the whole input with ok=false.
// The empty string yields 0, true: callers are expected to classify tokens
// before parsing, so that path is only reachable when classification is
// bypassed.
func ParseUnsigned(s string) (value float64, ok bool) {
	acc := 0.0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		acc = acc*10 + float64(c-'0')
	}
	return acc, true
}
