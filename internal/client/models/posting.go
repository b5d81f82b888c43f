// Package models defines the wire DTOs exchanged with the marketplace API.
//
// Values are built from response bodies per call and are never cached or
// mutated in place by the client.
package models

import (
	"fmt"
	"strings"
)

// JobPosting is a business's job offer with at least one shift.
type JobPosting struct {
	ID              string   `json:"id"`
	BusinessID      string   `json:"businessId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	JobRequirements []string `json:"jobRequirements,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Shifts          []Shift  `json:"shifts"`
}

// Shift is a single dated slot of a posting. Exactly one of HourlyRate and
// FixedAmount is set.
type Shift struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	HourlyRate      *float64      `json:"hourlyRate,omitempty"`
	FixedAmount     *float64      `json:"fixedAmount,omitempty"`
	Available       *bool         `json:"available,omitempty"`
	JobApplications []Application `json:"jobApplications,omitempty"`
}

// Pay renders the shift's pricing for humans, e.g. "25.00/h" or "120.00 fixed".
func (s Shift) Pay() string {
	switch {
	case s.HourlyRate != nil:
		return fmt.Sprintf("%.2f/h", *s.HourlyRate)
	case s.FixedAmount != nil:
		return fmt.Sprintf("%.2f fixed", *s.FixedAmount)
	default:
		return "n/a"
	}
}

func (s Shift) String() string {
	return fmt.Sprintf("%s %s %s-%s %s", s.ID, s.Date, s.StartTime, s.EndTime, s.Pay())
}

func (p JobPosting) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s @ %s", p.ID, p.Title, p.Location)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(p.Tags, ", "))
	}
	for _, s := range p.Shifts {
		fmt.Fprintf(&b, "\n  - %s", s)
	}
	return b.String()
}
