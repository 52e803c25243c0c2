package domain

import (
	"bytes"
	"encoding/json"
)

// CellKind is the discriminator of a PropertyCell.
type CellKind string

const (
	CellUnknown  CellKind = ""
	CellNumber   CellKind = "number"
	CellSelect   CellKind = "select"
	CellRichText CellKind = "rich_text"
	CellTitle    CellKind = "title"
	CellFormula  CellKind = "formula"
	CellDate     CellKind = "date"
	CellRollup   CellKind = "rollup"
)

// PropertyCell is one typed value of a Record. Only the payload matching Kind is set.
type PropertyCell struct {
	Kind     CellKind      `json:"type"`
	Number   *float64      `json:"number,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	RichText []TextRun     `json:"rich_text,omitempty"`
	Title    []TextRun     `json:"title,omitempty"`
	Formula  *Formula      `json:"formula,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Rollup   *Rollup       `json:"rollup,omitempty"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type TextRun struct {
	PlainText string `json:"plain_text"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// Formula carries the computed value under its own declared result type.
type Formula struct {
	Type    string     `json:"type"`
	Number  *float64   `json:"number,omitempty"`
	String  *string    `json:"string,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Rollup aggregates values from linked records. Array is set when Type is "array".
type Rollup struct {
	Type   string          `json:"type"`
	Number *float64        `json:"number,omitempty"`
	Date   *DateValue      `json:"date,omitempty"`
	Array  []*PropertyCell `json:"array,omitempty"`
}

const RollupArray = "array"

// UnmarshalJSON accepts any JSON value. Values that are not objects, or objects that do
// not match the expected payload shape, decode to an unknown cell instead of failing the
// whole record.
func (c *PropertyCell) UnmarshalJSON(data []byte) error {
	*c = PropertyCell{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	type plain PropertyCell
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil
	}
	*c = PropertyCell(p)
	if !c.Kind.known() {
		c.Kind = CellUnknown
	}
	return nil
}

func (k CellKind) known() bool {
	switch k {
	case CellNumber, CellSelect, CellRichText, CellTitle, CellFormula, CellDate, CellRollup:
		return true
	default:
		return false
	}
}

// Record is one row of a remote database.
type Record struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Properties map[string]*PropertyCell `json:"properties"`
}

// Property returns the named cell, or nil when absent.
func (r Record) Property(name string) *PropertyCell {
	if r.Properties == nil {
		return nil
	}
	return r.Properties[name]
}
