package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/shiftboard/internal/client/claims"
	"github.com/dmitrijs2005/shiftboard/internal/client/models"
	"github.com/dmitrijs2005/shiftboard/internal/logging"
)

// Marketplace is the part of *api.Client the CLI drives.
type Marketplace interface {
	Authenticate(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context)
	Token(ctx context.Context) (string, bool)

	ListPostings(ctx context.Context, p models.ListPostingsParams) ([]models.JobPosting, error)
	CreatePosting(ctx context.Context, req models.CreatePostingRequest) (*models.JobPosting, error)
	ApplyToShift(ctx context.Context, shiftID, coverMessage string) error
	ListOwnApplications(ctx context.Context) ([]models.WorkerApplicationSummary, error)
	AcceptApplication(ctx context.Context, shiftID, workerID string) error
}

type App struct {
	api    Marketplace
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp builds an App reading commands from in and writing to out.
func NewApp(api Marketplace, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		api:    api,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to shiftboard (type 'help' for commands)\n")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.api.Token(ctx)
	return ok
}

// status is the prompt decoration: the user's name when logged in.
func (a *App) status(ctx context.Context) string {
	tok, ok := a.api.Token(ctx)
	if !ok {
		return ""
	}
	c, err := claims.Parse(tok)
	if err != nil {
		return "(logged in)"
	}
	return fmt.Sprintf("(%s)", c.Name())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
