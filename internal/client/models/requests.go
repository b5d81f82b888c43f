package models

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest creates an account. Exactly one of Worker and Business must be true.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Worker   bool   `json:"worker"`
	Business bool   `json:"business"`
}

// CreatePostingRequest is the body of a new job posting.
// A nil JobRequirements or Tags slice is omitted from the payload.
type CreatePostingRequest struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Location        string       `json:"location"`
	JobRequirements []string     `json:"jobRequirements,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Shifts          []ShiftInput `json:"shifts"`
}

// ShiftInput describes one shift of a new posting.
type ShiftInput struct {
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	FixedAmount *float64 `json:"fixedAmount,omitempty"`
}

// HourlyShift builds a shift paid by the hour.
func HourlyShift(date, start, end string, rate float64) ShiftInput {
	return ShiftInput{Date: date, StartTime: start, EndTime: end, HourlyRate: &rate}
}

// FixedShift builds a shift paid a fixed amount.
func FixedShift(date, start, end string, amount float64) ShiftInput {
	return ShiftInput{Date: date, StartTime: start, EndTime: end, FixedAmount: &amount}
}

// ListPostingsParams filters the postings listing. At most one of JobID and
// BusinessID may be set; Page is zero based and defaults server side.
type ListPostingsParams struct {
	JobID      string
	BusinessID string
	Page       *int
}

// ApplyRequest is the body sent when applying to a shift.
type ApplyRequest struct {
	CoverMessage string `json:"coverMessage"`
}
