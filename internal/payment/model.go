package payment

import "strings"

type Method string

const (
	MethodCOD  Method = "COD"
	MethodUPI  Method = "UPI"
	MethodCard Method = "CARD"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// ParseMethod accepts any casing; an empty value means cash on delivery.
func ParseMethod(s string) (Method, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return MethodCOD, true
	}
	switch m := Method(s); m {
	case MethodCOD, MethodUPI, MethodCard:
		return m, true
	}
	return "", false
}
