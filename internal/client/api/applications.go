package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

// ApplyToShift submits the logged-in worker's application to a shift.
func (c *Client) ApplyToShift(ctx context.Context, shiftID, coverMessage string) error {
	if err := ValidateApply(coverMessage); err != nil {
		return err
	}

	_, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/jobs/" + url.PathEscape(shiftID) + "/apply/",
		Body:        models.ApplyRequest{CoverMessage: coverMessage},
		RequireAuth: true,
		DiscardBody: true,
	})
	return err
}

// ListOwnApplications returns the logged-in worker's applications.
func (c *Client) ListOwnApplications(ctx context.Context) ([]models.WorkerApplicationSummary, error) {
	res, err := c.Do(ctx, Request{
		Method:      http.MethodGet,
		Path:        "/jobs/applications/mine",
		RequireAuth: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]models.WorkerApplicationSummary](res)
}

// AcceptApplication accepts a worker's application to one of the business's shifts.
func (c *Client) AcceptApplication(ctx context.Context, shiftID, workerID string) error {
	_, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/jobs/" + url.PathEscape(shiftID) + "/applications/" + url.PathEscape(workerID) + "/accept",
		RequireAuth: true,
		DiscardBody: true,
	})
	return err
}
