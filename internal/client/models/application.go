package models

import "fmt"

// Application is a worker's application to a shift.
type Application struct {
	WorkerID     string `json:"workerId"`
	Accepted     bool   `json:"accepted"`
	CoverMessage string `json:"coverMessage,omitempty"`
}

// WorkerApplicationSummary is the server's denormalized view of one of the
// caller's own applications. Read only.
type WorkerApplicationSummary struct {
	ShiftID   string `json:"shiftId"`
	PostingID string `json:"postingId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Accepted  bool   `json:"accepted"`
}

func (s WorkerApplicationSummary) String() string {
	status := "pending"
	if s.Accepted {
		status = "accepted"
	}
	return fmt.Sprintf("%s %s %s %s-%s [%s]", s.ShiftID, s.Title, s.Date, s.StartTime, s.EndTime, status)
}
