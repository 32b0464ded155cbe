package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/logging"
)

// ---- fakes ----

// memStore is an in-memory credential.Store.
type memStore struct {
	mu    sync.Mutex
	token string
}

func (m *memStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memStore) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type gwCall struct {
	Method string
	Path   string
	Body   any
}

// fakeGateway implements api.Gateway for service tests. Responses are
// registered per "METHOD path"; recorded calls allow argument checks.
type fakeGateway struct {
	mu    sync.Mutex
	calls []gwCall

	out      map[string]any
	errs     map[string]error
	textOut  string
	textErr  error
	lastText any
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		out:  make(map[string]any),
		errs: make(map[string]error),
	}
}

func (f *fakeGateway) record(method, path string, body any) {
	f.mu.Lock()
	f.calls = append(f.calls, gwCall{Method: method, Path: path, Body: body})
	f.mu.Unlock()
}

func (f *fakeGateway) respond(method, path string, out any) error {
	if err := f.errs[method+" "+path]; err != nil {
		return err
	}
	v, ok := f.out[method+" "+path]
	if !ok || out == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeGateway) Get(ctx context.Context, path string, out any) error {
	f.record("GET", path, nil)
	return f.respond("GET", path, out)
}

func (f *fakeGateway) Post(ctx context.Context, path string, body, out any) error {
	f.record("POST", path, body)
	return f.respond("POST", path, out)
}

func (f *fakeGateway) Put(ctx context.Context, path string, body, out any) error {
	f.record("PUT", path, body)
	return f.respond("PUT", path, out)
}

func (f *fakeGateway) Delete(ctx context.Context, path string, body any) error {
	f.record("DELETE", path, body)
	return f.respond("DELETE", path, nil)
}

func (f *fakeGateway) PostText(ctx context.Context, path string, body any) (string, error) {
	f.record("POST", path, body)
	f.lastText = body
	return f.textOut, f.textErr
}

func (f *fakeGateway) callsTo(method, path string) []gwCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []gwCall
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// ---- shared helpers ----

func testLogger() logging.Logger {
	return logging.Setup(io.Discard)
}

// makeToken builds an unsigned three-segment credential for the given
// subject and role.
func makeToken(t *testing.T, uid, role string) string {
	t.Helper()

	payload := map[string]any{"uid": uid}
	if role != "" {
		payload["role"] = role
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) +
		"." + enc.EncodeToString(raw) +
		"." + enc.EncodeToString([]byte("sig"))
}

// loggedInState builds a session State authenticated as uid with role.
func loggedInState(t *testing.T, uid, role string) *session.State {
	t.Helper()
	st := session.NewState(&memStore{}, testLogger())
	require.NoError(t, st.Login(context.Background(), makeToken(t, uid, role)))
	return st
}

func anonymousState() *session.State {
	return session.NewState(&memStore{}, testLogger())
}
