package telegram

import (
	"fmt"
	"strings"
	"time"
)

// FormatMaintenanceReport formats the outcome of an administrative maintenance
// action into a Markdown message for the operations chat.
func FormatMaintenanceReport(action, status string, output []string, duration time.Duration, failure error) string {
	var b strings.Builder

	if failure != nil {
		b.WriteString("❌ *Maintenance action failed*\n\n")
	} else {
		b.WriteString("✅ *Maintenance action completed*\n\n")
	}

	b.WriteString(fmt.Sprintf("🔧 *Action:* %s\n", action))
	b.WriteString(fmt.Sprintf("💬 *Status:* %s\n", status))
	b.WriteString(fmt.Sprintf("⏱ *Duration:* %s\n", duration.Round(time.Millisecond)))

	if failure != nil {
		b.WriteString(fmt.Sprintf("⚠️ *Error:* %s\n", failure.Error()))
	}

	if len(output) > 0 {
		b.WriteString("\n*Output:*\n")
		const maxLines = 20
		lines := output
		if len(lines) > maxLines {
			lines = lines[len(lines)-maxLines:]
			b.WriteString(fmt.Sprintf("_(last %d lines)_\n", maxLines))
		}
		for _, line := range lines {
			b.WriteString("- " + line + "\n")
		}
	}

	return b.String()
}
