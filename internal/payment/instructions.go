package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

var InstructionMap = map[Method][]string{
	MethodCOD: {
		"Your order will be delivered to the selected address",
		"Keep {{amount}} ready in cash when the delivery partner arrives",
		"Pay the delivery partner directly and collect your receipt",
	},
	MethodUPI: {
		"Open any UPI app on your phone",
		"Approve the collect request of {{amount}} for order {{order_number}}",
		"Keep the UPI reference number until the order is confirmed",
	},
	MethodCard: {
		"Enter your card number, expiry date and CVV",
		"Complete the OTP verification from your bank",
		"Wait until the payment of {{amount}} is confirmed",
	},
}

func GetInstructions(method Method) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

func InjectVariables(
	steps []string,
	vars InstructionVars,
) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}

// Instructions renders the customer-facing steps for an order.
func Instructions(method Method, amount float64, orderNumber string) []string {
	return InjectVariables(GetInstructions(method), InstructionVars{
		"amount":       FormatINR(amount),
		"order_number": orderNumber,
	})
}

// FormatINR renders amount with two decimals and Indian digit grouping, e.g. ₹1,23,456.50.
func FormatINR(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(append(parts, tail), ",")
	}

	out := "₹" + grouped + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
