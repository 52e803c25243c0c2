package domain

import (
	"fmt"
	"time"
)

// Dataset names one of the six metric categories kept per business unit.
type Dataset string

const (
	DatasetPnL     Dataset = "pnl"
	DatasetSurvey  Dataset = "survey"
	DatasetSales   Dataset = "sales"
	DatasetEval    Dataset = "eval"
	DatasetIssue   Dataset = "issue"
	DatasetMeeting Dataset = "meeting"
)

// Datasets lists every dataset in briefing order.
var Datasets = []Dataset{
	DatasetPnL,
	DatasetSurvey,
	DatasetSales,
	DatasetEval,
	DatasetIssue,
	DatasetMeeting,
}

type UnitConfig struct {
	Name     string
	ChatID   string
	Datasets map[Dataset]string
}

func (u UnitConfig) DatabaseID(ds Dataset) (string, error) {
	id, ok := u.Datasets[ds]
	if !ok || id == "" {
		return "", fmt.Errorf("unit %q: no database configured for %s", u.Name, ds)
	}
	return id, nil
}

// Weekday counts from Monday = 0 to Sunday = 6.
type Weekday int

func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) String() string {
	return time.Weekday((int(w) + 1) % 7).String()
}

// Slot schedules one unit at an exact weekday and hour.
type Slot struct {
	Weekday Weekday
	Hour    int
	Unit    string
}

type Credentials struct {
	NotionToken   string
	TelegramToken string
	GeminiKey     string
}

type Timeouts struct {
	Query     time.Duration
	Delivery  time.Duration
	Summarize time.Duration
}

// Config is built once at startup and passed explicitly; it is never mutated afterwards.
type Config struct {
	Units       []UnitConfig
	Schedule    []Slot
	Credentials Credentials
	Timeouts    Timeouts
	Model       string
	ParseMode   string
	// Ledger is the run ledger database path; empty disables it.
	Ledger string
}

func (c Config) Unit(name string) (UnitConfig, bool) {
	for _, u := range c.Units {
		if u.Name == name {
			return u, true
		}
	}
	return UnitConfig{}, false
}

func (c Config) UnitNames() []string {
	names := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		names = append(names, u.Name)
	}
	return names
}
