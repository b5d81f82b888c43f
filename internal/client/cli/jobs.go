package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

const jobsUsage = "jobs [jid=ID|bid=ID] [page=N]"

// parseJobsArgs turns "key=value" arguments into listing filters.
func parseJobsArgs(args []string) (models.ListPostingsParams, error) {
	var p models.ListPostingsParams
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return p, errUsage(jobsUsage)
		}
		switch key {
		case "jid":
			p.JobID = value
		case "bid":
			p.BusinessID = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return p, errUsage(jobsUsage)
			}
			p.Page = &n
		default:
			return p, errUsage(jobsUsage)
		}
	}
	return p, nil
}

// Jobs lists postings, optionally filtered by job or business.
func (a *App) Jobs(ctx context.Context, args []string) error {
	params, err := parseJobsArgs(args)
	if err != nil {
		return err
	}

	postings, err := a.api.ListPostings(ctx, params)
	if err != nil {
		return err
	}

	if len(postings) == 0 {
		a.println("No postings found")
		return nil
	}
	for _, p := range postings {
		a.println(p.String())
	}
	return nil
}

// Post collects a posting interactively and publishes it. Shifts are read
// until an empty date is entered.
func (a *App) Post(ctx context.Context) error {
	var req models.CreatePostingRequest
	var err error

	if req.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if req.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Location, err = getSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if req.JobRequirements, err = getList(a.reader, "Requirements", a.out); err != nil {
		return err
	}
	if req.Tags, err = getList(a.reader, "Tags", a.out); err != nil {
		return err
	}

	for i := 0; ; i++ {
		s, done, err := a.readShift(i)
		if err != nil {
			return err
		}
		if done {
			break
		}
		req.Shifts = append(req.Shifts, s)
	}

	posting, err := a.api.CreatePosting(ctx, req)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "posting created", "id", posting.ID, "shifts", len(posting.Shifts))
	a.println("Created:")
	a.println(posting.String())
	return nil
}

// readShift prompts for shift i. done is true when the date is left empty.
func (a *App) readShift(i int) (s models.ShiftInput, done bool, err error) {
	date, err := getSimpleText(a.reader, fmt.Sprintf("Shift %d date (YYYY-MM-DD, empty to finish)", i+1), a.out)
	if err != nil || date == "" {
		return s, err == nil, err
	}

	start, err := getSimpleText(a.reader, "Start time (HH:MM:SS)", a.out)
	if err != nil {
		return s, false, err
	}
	end, err := getSimpleText(a.reader, "End time (HH:MM:SS)", a.out)
	if err != nil {
		return s, false, err
	}

	pay, err := getSimpleText(a.reader, "Pay: hourly rate like 15/h, or a fixed amount like 120", a.out)
	if err != nil {
		return s, false, err
	}
	hourly := false
	if v, ok := strings.CutSuffix(pay, "/h"); ok {
		pay, hourly = strings.TrimSpace(v), true
	}
	amount, err := strconv.ParseFloat(pay, 64)
	if err != nil {
		return s, false, fmt.Errorf("invalid pay %q", pay)
	}

	if hourly {
		return models.HourlyShift(date, start, end, amount), false, nil
	}
	return models.FixedShift(date, start, end, amount), false, nil
}

// Apply sends an application with a cover message to a shift.
func (a *App) Apply(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("apply <shiftId>")
	}

	cover, err := getMultiline(a.reader, "Cover message", a.out)
	if err != nil {
		return err
	}

	if err := a.api.ApplyToShift(ctx, args[0], cover); err != nil {
		return err
	}
	a.println("Application sent")
	return nil
}

// Mine lists the logged-in worker's applications.
func (a *App) Mine(ctx context.Context) error {
	apps, err := a.api.ListOwnApplications(ctx)
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		a.println("No applications yet")
		return nil
	}
	for _, s := range apps {
		a.println(s.String())
	}
	return nil
}

// Accept accepts a worker's application to one of the business's shifts.
func (a *App) Accept(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage("accept <shiftId> <workerId>")
	}

	if err := a.api.AcceptApplication(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.println("Application accepted")
	return nil
}
