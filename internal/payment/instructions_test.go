package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInstructions(t *testing.T) {
	t.Run("ReturnsTemplateForKnownMethod", func(t *testing.T) {
		for _, m := range []Method{MethodCOD, MethodUPI, MethodCard} {
			instructions := GetInstructions(m)
			assert.NotEmpty(t, instructions)

			found := false
			for _, instr := range instructions {
				if strings.Contains(instr, "{{amount}}") {
					found = true
					break
				}
			}
			assert.True(t, found, "%s instructions should mention the amount", m)
		}
	})

	t.Run("ReturnsDefaultForUnknown", func(t *testing.T) {
		assert.Len(t, GetInstructions("BITCOIN"), 1)
	})
}

func TestInjectVariables(t *testing.T) {
	t.Run("ReplacesPlaceholders", func(t *testing.T) {
		template := []string{"Pay {{amount}} for {{order_number}}."}
		result := InjectVariables(template, InstructionVars{"amount": "₹10.00", "order_number": "ORD-1"})
		assert.Equal(t, []string{"Pay ₹10.00 for ORD-1."}, result)
	})

	t.Run("LeavesUnknownPlaceholders", func(t *testing.T) {
		result := InjectVariables([]string{"Pay {{amount}}"}, InstructionVars{})
		assert.Equal(t, "Pay {{amount}}", result[0])
	})
}

func TestInstructions(t *testing.T) {
	steps := Instructions(MethodCOD, 850.5, "ORD-1")
	assert.Contains(t, steps[1], "₹850.50")
}

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:        "₹0.00",
		99.9:     "₹99.90",
		850.5:    "₹850.50",
		1000:     "₹1,000.00",
		123456.5: "₹1,23,456.50",
		12345678: "₹1,23,45,678.00",
		-1500.25: "-₹1,500.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatINR(in), "%v", in)
	}
}

func TestParseMethod(t *testing.T) {
	m, ok := ParseMethod("")
	assert.True(t, ok)
	assert.Equal(t, MethodCOD, m)

	m, ok = ParseMethod("upi")
	assert.True(t, ok)
	assert.Equal(t, MethodUPI, m)

	_, ok = ParseMethod("cheque")
	assert.False(t, ok)
}
