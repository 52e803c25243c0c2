package domain

import "time"

// Section is one titled block of a briefing.
type Section struct {
	Dataset Dataset
	Title   string
	Emoji   string
	Lines   []string
}

// Briefing is the complete document for one unit on one run. It lives only in memory.
type Briefing struct {
	Unit        UnitConfig
	GeneratedAt time.Time
	Sections    []Section
	AISummary   string
	Text        string
}
