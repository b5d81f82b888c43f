package api

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// ValidateRegister checks that exactly one role is requested.
func ValidateRegister(req models.RegisterRequest) error {
	if req.Worker == req.Business {
		return validationError("role", "Choose exactly one role: worker or business")
	}
	return nil
}

// ValidateCreatePosting checks a new posting and its shifts, stopping at the
// first violation. Dates and times are checked for shape only.
func ValidateCreatePosting(req models.CreatePostingRequest) error {
	required := []struct {
		field, value string
	}{
		{"title", req.Title},
		{"description", req.Description},
		{"location", req.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return validationError(r.field, fmt.Sprintf("%s is required", capitalize(r.field)))
		}
	}

	if len(req.Shifts) == 0 {
		return validationError("shifts", "At least one shift is required")
	}

	for i, s := range req.Shifts {
		if err := validateShift(s, i); err != nil {
			return err
		}
	}
	return nil
}

func validateShift(s models.ShiftInput, i int) error {
	at := fmt.Sprintf(" at shifts[%d]", i)

	if !datePattern.MatchString(s.Date) {
		return validationError("date", "Date must be in YYYY-MM-DD format"+at)
	}
	if !timePattern.MatchString(s.StartTime) {
		return validationError("startTime", "Start time must be in HH:MM:SS format"+at)
	}
	if !timePattern.MatchString(s.EndTime) {
		return validationError("endTime", "End time must be in HH:MM:SS format"+at)
	}

	if (s.HourlyRate == nil) == (s.FixedAmount == nil) {
		return validationError("pricing", "Provide exactly one of hourlyRate or fixedAmount"+at)
	}
	if s.HourlyRate != nil && !nonNegative(*s.HourlyRate) {
		return validationError("hourlyRate", "Hourly rate must be a non-negative number"+at)
	}
	if s.FixedAmount != nil && !nonNegative(*s.FixedAmount) {
		return validationError("fixedAmount", "Fixed amount must be a non-negative number"+at)
	}
	return nil
}

// ValidateListPostings rejects filtering by job and business at once.
func ValidateListPostings(p models.ListPostingsParams) error {
	if p.JobID != "" && p.BusinessID != "" {
		return validationError("", "Filter by job id or business id, not both")
	}
	return nil
}

// ValidateApply requires a non-blank cover message.
func ValidateApply(coverMessage string) error {
	if strings.TrimSpace(coverMessage) == "" {
		return validationError("coverMessage", "Cover message is required")
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
