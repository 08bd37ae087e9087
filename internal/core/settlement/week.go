package settlement

import (
	"fmt"
	"time"
)

// WeekID returns the ISO-8601 week identifier for t, e.g. "2026-W35". The
// instant is normalized to UTC first so the identifier does not depend on
// the server timezone.
func WeekID(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
