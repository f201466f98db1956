// Glossary of RC power-system terms shown by the CLI help
package glossary

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Section is one glossary topic.
type Section struct {
	Title string
	Body  string
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// Sections returns the glossary topics in display order.
func Sections() []Section {
	return []Section{
		{
			Title: "Coulomb counting",
			Body: "Integrating current draw over time to track consumed charge. " +
				"Each sampling interval contributes current * interval, converted to mAh. " +
				"Remaining capacity is the effective capacity minus the running total.",
		},
		{
			Title: "80% reserve rule",
			Body: "LiPo packs age quickly when drained fully. The rule treats only 80% " +
				"of nominal capacity as usable, so a 1500 mAh pack plans around 1200 mAh. " +
				"Flight-time and discharge estimates apply it when enabled.",
		},
		{
			Title: "KV rating",
			Body: "Motor speed constant in RPM per volt, unloaded. RPM is roughly KV times " +
				"pack voltage. Low KV motors (under 1000) trade speed for torque and swing " +
				"larger propellers; high KV motors (2000 and up) suit small fast props.",
		},
		{
			Title: "C rating",
			Body: "Battery discharge rating relative to capacity. Maximum rated current is " +
				"capacity in Ah times C. Holding continuous draw near 60% of that maximum " +
				"keeps the pack cool and extends its life.",
		},
		{
			Title: "ESC headroom",
			Body: "Electronic speed controllers are sized with a 20% margin over the " +
				"expected maximum current. A 40 A draw calls for at least a 48 A controller.",
		},
		{
			Title: "Pitch speed",
			Body: "Theoretical forward speed of a propeller: pitch per revolution times RPM. " +
				"With pitch in cm and RPM, speed in m/s is pitch * rpm / 60000. The airframe " +
				"never quite reaches it, but it bounds level flight speed.",
		},
		{
			Title: "Static thrust checks",
			Body: "Rules of thumb against all-up weight: thrust at or above weight hovers, " +
				"half the weight takes off from a runway, a third climbs gently. Aerobatic " +
				"airframes want a ratio above one.",
		},
	}
}

// Render formats all sections wrapped to width.
func Render(width int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	for i, s := range Sections() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
		b.WriteString(wordwrap.String(s.Body, width))
	}
	b.WriteString("\n")
	return b.String()
}
