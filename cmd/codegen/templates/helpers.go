package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeList is "T0, T1" for two arguments, with extra appended.
func typeList(n int, extra ...string) string {
	parts := make([]string, 0, n+len(extra))
	if n > 0 {
		parts = append(parts, prefixedStrings("T", n))
	}
	parts = append(parts, extra...)
	return strings.Join(parts, ", ")
}

func typeParams(n int, extra ...string) string {
	l := typeList(n, extra...)
	if l == "" {
		return ""
	}
	return "[" + l + " any]"
}

func typeArgs(n int, extra ...string) string {
	l := typeList(n, extra...)
	if l == "" {
		return ""
	}
	return "[" + l + "]"
}

// connTypeList is the parameter list of an extended slot.
func connTypeList(n int) string {
	if n == 0 {
		return "Connection"
	}
	return "Connection, " + typeList(n)
}

// argType is what the underlying signal carries for n arguments.
func argType(n int) string {
	switch n {
	case 0:
		return "Void"
	case 1:
		return "T0"
	default:
		return "Args" + strconv.Itoa(n) + "[" + typeList(n) + "]"
	}
}

func params(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "a" + strconv.Itoa(i) + " T" + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}

func argLiteral(n int) string {
	switch n {
	case 0:
		return "Void{}"
	case 1:
		return "a0"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "A" + strconv.Itoa(i) + ": a" + strconv.Itoa(i)
	}
	return argType(n) + "{" + strings.Join(parts, ", ") + "}"
}

func unpack(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "arg"
	}
	return prefixedStrings("arg.A", n)
}

func unpackConn(n int) string {
	if n == 0 {
		return "c"
	}
	return "c, " + unpack(n)
}

func argCount(n int) string {
	switch n {
	case 0:
		return "no arguments"
	case 1:
		return "one argument"
	default:
		return strconv.Itoa(n) + " arguments"
	}
}
