// Package dispatch decides which business units are due at a given hour.
package dispatch

import (
	"time"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

// Zone is the fixed UTC+9 offset every schedule is expressed in, whatever the host zone.
var Zone = time.FixedZone("KST", 9*60*60)

// Now converts t into the schedule zone and returns its weekday and hour.
func Now(t time.Time) (domain.Weekday, int) {
	local := t.In(Zone)
	return domain.WeekdayOf(local), local.Hour()
}

// SelectTargets returns the units whose slot matches weekday and hour exactly, each once,
// in schedule order.
func SelectTargets(weekday domain.Weekday, hour int, schedule []domain.Slot) []string {
	targets := []string{}
	seen := make(map[string]bool)
	for _, slot := range schedule {
		if slot.Weekday != weekday || slot.Hour != hour || seen[slot.Unit] {
			continue
		}
		seen[slot.Unit] = true
		targets = append(targets, slot.Unit)
	}
	return targets
}

// SlotStart is the beginning of the schedule hour containing t.
func SlotStart(t time.Time) time.Time {
	return t.In(Zone).Truncate(time.Hour)
}
