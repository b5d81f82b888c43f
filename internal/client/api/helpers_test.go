package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/shiftboard/internal/client/tokenstore"
)

/*************
 * Fake transport
 *************/

type fakeDoer struct {
	mu     sync.Mutex
	calls  int
	reqs   []*http.Request
	bodies []string

	status      int
	contentType string
	body        string
	err         error

	// bodyRead is set when the response body was read by the client.
	bodyRead bool
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.reqs = append(f.reqs, req)
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		f.bodies = append(f.bodies, string(b))
	} else {
		f.bodies = append(f.bodies, "")
	}

	if f.err != nil {
		return nil, f.err
	}

	h := http.Header{}
	if f.contentType != "" {
		h.Set("Content-Type", f.contentType)
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       &trackingBody{r: strings.NewReader(f.body), read: &f.bodyRead},
		Request:    req,
	}, nil
}

func (f *fakeDoer) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reqs) == 0 {
		t.Fatal("no request was sent")
	}
	return f.reqs[len(f.reqs)-1]
}

func (f *fakeDoer) lastBody() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bodies) == 0 {
		return ""
	}
	return f.bodies[len(f.bodies)-1]
}

func (f *fakeDoer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type trackingBody struct {
	r    io.Reader
	read *bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	*b.read = true
	return b.r.Read(p)
}

func (b *trackingBody) Close() error { return nil }

func jsonDoer(status int, body string) *fakeDoer {
	return &fakeDoer{status: status, contentType: "application/json", body: body}
}

/*************
 * Fake token store
 *************/

type fakeStore struct {
	mu     sync.Mutex
	token  string
	gets   int
	sets   []string
	getErr error
	setErr error
}

func (s *fakeStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.token, nil
}

func (s *fakeStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets = append(s.sets, token)
	if s.setErr != nil {
		return s.setErr
	}
	s.token = token
	return nil
}

var _ tokenstore.Store = (*fakeStore)(nil)

var errBoom = errors.New("boom")

func newTestClient(d Doer, store tokenstore.Store) *Client {
	return NewClient(Options{BaseURL: "http://api.test/api/v1", HTTPClient: d, Store: store})
}

func loggedIn(t *testing.T, c *Client, token string) {
	t.Helper()
	c.SetToken(context.Background(), token)
}
