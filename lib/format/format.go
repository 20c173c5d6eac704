package format

import (
	"fmt"

	"github.com/pkg/errors"
)

// Check validates a greeting format string: exactly one %s verb,
// no other verbs. %% escapes are allowed.
func Check(s string) error {
	verbs := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 >= len(s) {
			return errors.Errorf("format %q: dangling %% at end", s)
		}
		switch s[i+1] {
		case '%':
			i++
		case 's':
			verbs++
			i++
		default:
			return errors.Errorf("format %q: unexpected verb %%%c, only %%s allowed", s, s[i+1])
		}
	}
	if verbs != 1 {
		return errors.Errorf("format %q: want exactly one %%s, got %d", s, verbs)
	}
	return nil
}

// Render substitutes name into a format that passed Check.
func Render(format string, name string) string {
	return fmt.Sprintf(format, name)
}
