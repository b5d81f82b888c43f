package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

// Authenticate logs in and stores the returned token.
func (c *Client) Authenticate(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	res, err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     creds,
		SkipAuth: true,
	})
	if err != nil {
		return nil, err
	}

	out, err := decodeJSON[models.LoginResponse](res)
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, malformedResponseError("Login response did not include a token", nil)
	}

	c.SetToken(ctx, out.Token)
	return &out, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := ValidateRegister(req); err != nil {
		return err
	}

	_, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Body:        req,
		SkipAuth:    true,
		DiscardBody: true,
	})
	return err
}
