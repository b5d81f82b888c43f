package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/shiftboard/internal/client/claims"
	"github.com/dmitrijs2005/shiftboard/internal/client/models"
)

// Input indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getList       = GetList
)

// Register prompts for a username, password and role and creates the
// account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	role, err := getSimpleText(a.reader, "Register as (w)orker or (b)usiness?", a.out)
	if err != nil {
		return err
	}
	role = strings.ToLower(role)

	req := models.RegisterRequest{
		Username: username,
		Password: string(password),
		Worker:   role == "w" || role == "worker",
		Business: role == "b" || role == "business",
	}
	if err := a.api.Register(ctx, req); err != nil {
		return err
	}

	a.logger.Info(ctx, "account registered", "username", username)
	a.println("Registered! Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates. The token is kept by the
// API client.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if _, err := a.api.Authenticate(ctx, models.Credentials{Username: username, Password: string(password)}); err != nil {
		a.logger.Debug(ctx, "login failed", "username", username, "error", err)
		return err
	}

	a.logger.Info(ctx, "logged in", "username", username)
	a.println("Login successful")
	return nil
}

// Logout forgets the token. No request is made.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout(ctx)
	a.println("Logged out")
	return nil
}

// WhoAmI prints what the held token says about its owner. The token is not
// verified, so the output is informational only.
func (a *App) WhoAmI(ctx context.Context) error {
	tok, ok := a.api.Token(ctx)
	if !ok {
		a.println("Not logged in")
		return nil
	}

	c, err := claims.Parse(tok)
	if err != nil {
		a.println("Logged in (token details unavailable)")
		return nil
	}

	if c.Expired(a.now()) {
		a.printf("%s [expired]\n", c)
		return nil
	}
	a.println(c.String())
	return nil
}
