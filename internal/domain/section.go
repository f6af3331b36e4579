package domain

import (
	"fmt"
	"strings"
)

// Section identifies one of the dashboard views
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionCarbon    Section = "carbon"
	SectionESG       Section = "esg"
	SectionPackaging Section = "packaging"
	SectionProducts  Section = "products"
)

// DefaultSection is the view a new session starts on
const DefaultSection = SectionDashboard

// Sections lists every section in navigation order
var Sections = []Section{
	SectionDashboard,
	SectionCarbon,
	SectionESG,
	SectionPackaging,
	SectionProducts,
}

var sectionLabels = map[Section]string{
	SectionDashboard: "Dashboard",
	SectionCarbon:    "Carbon Footprint",
	SectionESG:       "ESG Scoring",
	SectionPackaging: "Packaging",
	SectionProducts:  "Products",
}

// Label returns the navigation label of the section
func (s Section) Label() string {
	return sectionLabels[s]
}

// HasResult reports whether the section publishes a computed result.
// The dashboard only renders static datasets.
func (s Section) HasResult() bool {
	return s != SectionDashboard
}

// ParseSection converts a section identifier, ignoring case and surrounding space
func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := sectionLabels[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return s, nil
}

// SectionInfo is the navigation entry for a section
type SectionInfo struct {
	ID    Section `json:"id"`
	Label string  `json:"label"`
}

// FieldKind is the input control a form field is rendered with
type FieldKind string

const (
	FieldNumber   FieldKind = "number"
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

// FieldOption is one choice of a select field
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField describes a single panel input
type FormField struct {
	Name        string        `json:"name"`
	Kind        FieldKind     `json:"kind"`
	Label       string        `json:"label"`
	Default     string        `json:"default"`
	Placeholder string        `json:"placeholder,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
	Min         *float64      `json:"min,omitempty"`
	Max         *float64      `json:"max,omitempty"`
}

// PanelForm is the view-model contract of a panel
type PanelForm struct {
	Section Section     `json:"section"`
	Title   string      `json:"title"`
	Action  string      `json:"action"`
	Fields  []FormField `json:"fields"`
}
