package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shiftboard/internal/client/claims"
	"github.com/dmitrijs2005/shiftboard/internal/client/models"
	"github.com/dmitrijs2005/shiftboard/internal/logging"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	token string

	// Authenticate
	creds   models.Credentials
	authErr error

	// Register
	registered  *models.RegisterRequest
	registerErr error

	// ListPostings
	listParams *models.ListPostingsParams
	postings   []models.JobPosting
	listErr    error

	// CreatePosting
	created   *models.CreatePostingRequest
	createErr error

	// ApplyToShift
	appliedShift string
	appliedCover string
	applyErr     error

	// ListOwnApplications
	mine    []models.WorkerApplicationSummary
	mineErr error

	// AcceptApplication
	accepted  [2]string
	acceptErr error

	logoutCalls int
}

func (f *fakeAPI) Authenticate(_ context.Context, c models.Credentials) (*models.LoginResponse, error) {
	f.creds = c
	if f.authErr != nil {
		return nil, f.authErr
	}
	f.token = "tok-" + c.Username
	return &models.LoginResponse{Token: f.token}, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) error {
	f.registered = &req
	return f.registerErr
}

func (f *fakeAPI) Logout(context.Context) {
	f.logoutCalls++
	f.token = ""
}

func (f *fakeAPI) Token(context.Context) (string, bool) {
	return f.token, f.token != ""
}

func (f *fakeAPI) ListPostings(_ context.Context, p models.ListPostingsParams) ([]models.JobPosting, error) {
	f.listParams = &p
	return f.postings, f.listErr
}

func (f *fakeAPI) CreatePosting(_ context.Context, req models.CreatePostingRequest) (*models.JobPosting, error) {
	f.created = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.JobPosting{ID: "p-1", Title: req.Title, Location: req.Location}, nil
}

func (f *fakeAPI) ApplyToShift(_ context.Context, shiftID, cover string) error {
	f.appliedShift, f.appliedCover = shiftID, cover
	return f.applyErr
}

func (f *fakeAPI) ListOwnApplications(context.Context) ([]models.WorkerApplicationSummary, error) {
	return f.mine, f.mineErr
}

func (f *fakeAPI) AcceptApplication(_ context.Context, shiftID, workerID string) error {
	f.accepted = [2]string{shiftID, workerID}
	return f.acceptErr
}

var _ Marketplace = (*fakeAPI)(nil)

// newTestApp builds an App over f that reads input and writes to the
// returned buffer. Passwords come from the same input.
func newTestApp(t *testing.T, f *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	a := NewApp(f, logging.Nop(), strings.NewReader(input), &out)
	a.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return a, &out
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func mintToken(t *testing.T, username, role string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-" + username, ExpiresAt: jwt.NewNumericDate(exp)},
		Username:         username,
		Role:             role,
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

// stubInputs answers every prompt with the next of answers.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getPassword = func(*bufio.Reader, io.Writer) ([]byte, error) {
		s, err := next()
		return []byte(s), err
	}
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })
}
