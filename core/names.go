package core

import (
	"fmt"
	"strings"
)

// logPrefix wraps a scalar parameter whose candidates are given as
// base-10 exponents.
const logPrefix = "log10("

// isNameStart reports whether c may begin a parameter name.
func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNameChar reports whether c may appear after the first character of a
// plain parameter name.
func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// ValidName reports whether name is a plain identifier:
// [A-Za-z_][A-Za-z0-9_]*.
func ValidName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}

	return true
}

// ValidParamName reports whether name is acceptable where a parameter
// name is expected: a plain identifier, or an identifier with a log10(
// wrapper opened somewhere after a valid lead-in. A log10 wrapper left
// unclosed still passes here; DecodeLogName rejects it with a precise
// error once the parameter is known to be scalar-valued.
func ValidParamName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	opened := false
	for i := 1; i < len(name); i++ {
		c := name[i]
		if isNameChar(c) {
			continue
		}
		switch c {
		case '(':
			// Only the paren of a "log10(" occurrence may open a wrapper.
			if opened || i < len(logPrefix)-1 || name[i-len(logPrefix)+1:i+1] != logPrefix {
				return false
			}
			opened = true
		case ')':
			if !opened {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// DecodeLogName splits a log10-wrapped parameter name into its inner
// name. A name without the wrapper returns isLog=false and no error.
// An unclosed wrapper or an invalid inner name is an
// ErrInvalidParamName.
func DecodeLogName(name string) (inner string, isLog bool, err error) {
	if !strings.HasPrefix(name, logPrefix) {
		return "", false, nil
	}
	if !strings.HasSuffix(name, ")") {
		return "", false, fmt.Errorf("%w: unclosed parens in parameter %q", ErrInvalidParamName, name)
	}
	inner = name[len(logPrefix) : len(name)-1]
	if !ValidName(inner) {
		return "", false, fmt.Errorf("%w: %q is not a valid log10 parameter", ErrInvalidParamName, name)
	}

	return inner, true, nil
}
