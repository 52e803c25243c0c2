package api

import "time"

type Unit struct {
	Name     string            `json:"name"`
	ChatID   string            `json:"chat_id"`
	Datasets map[string]string `json:"datasets"`
}

type Slot struct {
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name"`
	Hour        int    `json:"hour"`
	Unit        string `json:"unit"`
}

type Section struct {
	Dataset string   `json:"dataset"`
	Title   string   `json:"title"`
	Lines   []string `json:"lines"`
}

type Briefing struct {
	Unit        string    `json:"unit"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
	AISummary   string    `json:"ai_summary,omitempty"`
	Text        string    `json:"text"`
}

type Run struct {
	ID         string    `json:"id"`
	Unit       string    `json:"unit"`
	Slot       time.Time `json:"slot"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

type DispatchReport struct {
	Weekday   int   `json:"weekday"`
	Hour      int   `json:"hour"`
	Delivered int   `json:"delivered"`
	Failed    int   `json:"failed"`
	Skipped   int   `json:"skipped"`
	Runs      []Run `json:"runs"`
}
