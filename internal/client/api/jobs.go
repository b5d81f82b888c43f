package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

// ListPostings returns one page of postings, optionally narrowed to a single
// job or a single business.
func (c *Client) ListPostings(ctx context.Context, p models.ListPostingsParams) ([]models.JobPosting, error) {
	if err := ValidateListPostings(p); err != nil {
		return nil, err
	}

	res, err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/jobs/",
		Query: map[string]any{
			"jid":  p.JobID,
			"bid":  p.BusinessID,
			"page": p.Page,
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]models.JobPosting](res)
}

// CreatePosting publishes a posting on behalf of the logged-in business.
func (c *Client) CreatePosting(ctx context.Context, req models.CreatePostingRequest) (*models.JobPosting, error) {
	if err := ValidateCreatePosting(req); err != nil {
		return nil, err
	}

	res, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/jobs/create",
		Body:        req,
		RequireAuth: true,
	})
	if err != nil {
		return nil, err
	}

	out, err := decodeJSON[models.JobPosting](res)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
