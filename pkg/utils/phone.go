package utils

import (
	"net/url"
	"strings"
)

// NormalizePhoneNumber converts a locally formatted Kenyan phone number
// into E.164 form for WhatsApp deep links. Numbers that already carry a
// "+" prefix are kept as-is after stripping separators.
func NormalizePhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	phone := b.String()

	if strings.HasPrefix(phone, "+") {
		return phone
	}

	switch {
	case strings.HasPrefix(phone, "0"):
		return "+254" + phone[1:]
	case strings.HasPrefix(phone, "7"):
		return "+254" + phone
	case strings.HasPrefix(phone, "254"):
		return "+" + phone
	default:
		return "+" + phone
	}
}

// WhatsAppURL builds a wa.me deep link carrying a prefilled message.
func WhatsAppURL(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
