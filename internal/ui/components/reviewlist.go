package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/wordnest/internal/catalog"
	"github.com/abhisek/wordnest/internal/spacedrep"
	"github.com/abhisek/wordnest/internal/ui/theme"
)

// ReviewList renders review entries with their catalog text.
type ReviewList struct {
	Entries []spacedrep.ReviewEntry
	Catalog *catalog.Catalog
	Ladder  spacedrep.Ladder
	Now     time.Time
}

// View renders one line per entry: status, id, catalog text, stage.
// Ids missing from the catalog are shown without text.
func (r ReviewList) View() string {
	if len(r.Entries) == 0 {
		return theme.Hint.Render("Nothing to review right now.")
	}

	var b strings.Builder
	for _, e := range r.Entries {
		b.WriteString(r.statusMark(e))
		b.WriteString(" ")
		b.WriteString(theme.Body.Render(e.ItemID))

		if r.Catalog != nil {
			if it, ok := r.Catalog.Lookup(e.ItemID); ok {
				b.WriteString("  ")
				b.WriteString(theme.Title.Render(it.Target))
				b.WriteString(theme.Hint.Render(" " + it.Native))
			}
		}

		b.WriteString(theme.Pending.Render(
			fmt.Sprintf("  stage %d/%d", e.Stage, r.Ladder.GraduationStage())))
		if over := e.Overdue(r.Ladder, r.Now); over > 0 {
			b.WriteString(theme.Pending.Render("  overdue " + FormatWait(over)))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r ReviewList) statusMark(e spacedrep.ReviewEntry) string {
	switch e.Status(r.Ladder, r.Now) {
	case spacedrep.ReviewDue:
		return theme.Due.Render("●")
	case spacedrep.ReviewGraduated:
		return theme.Graduated.Render("★")
	default:
		return theme.Pending.Render("○")
	}
}

// FormatWait renders a duration coarsely: minutes, hours or days.
func FormatWait(d time.Duration) string {
	switch {
	case d < time.Hour:
		m := int(d.Minutes())
		if m < 1 {
			m = 1
		}
		return fmt.Sprintf("%dm", m)
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
