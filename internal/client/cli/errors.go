package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/shiftboard/internal/client/api"
)

// errUsage marks a command invoked with bad arguments.
type errUsage string

func (e errUsage) Error() string { return "Usage: " + string(e) }

// describe renders err for the terminal.
func describe(err error) string {
	var usage errUsage
	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, io.EOF):
		return "Input closed"
	case errors.Is(err, api.ErrUnavailable):
		return fmt.Sprintf("Server unavailable: %v", err)
	case errors.Is(err, api.ErrUnauthorized):
		return fmt.Sprintf("Not authorized: %v. Use 'login' to sign in.", err)
	}

	if field := api.FieldOf(err); field != "" {
		return fmt.Sprintf("Invalid %s: %v", field, err)
	}
	if status := api.StatusCode(err); status > 0 {
		return fmt.Sprintf("Error %d: %v", status, err)
	}
	return fmt.Sprintf("Error: %v", err)
}
