package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSetRequiresSecretValueFlag(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--account", "acc-1",
		"--secret-key", "xthreads/acc-1/access_token",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"secret-value\" not set")
}

func TestAuthSetRejectsUnknownMethod(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--account", "acc-1",
		"--method", "api_key",
		"--secret-value", "x",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported auth method \"api_key\"")
}

func TestStatusByAccountHappyPath(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, "https://mastodon.example"))

	stdout, _, err := executeCLI(t, home, "status", "--account", "acc-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.Contains(t, stdout, "Primary (acc-1)")
	assert.Contains(t, stdout, "untested")
	assert.Contains(t, stdout, "auto-split: on")
}

func TestStatusByAccountJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	stdout, _, err := executeCLI(t, home, "account", "status", "--account", "acc-1", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Account\"")
	assert.Contains(t, stdout, "\"ID\": \"acc-1\"")
}

func TestAuthSetAutoAssignsNextNumericAccountID(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	for _, value := range []string{"token-1", "token-2"} {
		_, _, err := executeCLI(t, home,
			"auth", "set",
			"--server", "https://mastodon.example",
			"--secret-value", value,
		)
		require.NoError(t, err)
	}

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Account 1 (1)")
	assert.Contains(t, stdout, "Account 2 (2)")

	data, err := os.ReadFile(filepath.Join(home, ".xthreads", "accounts.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "xthreads/1/access_token")
	assert.Contains(t, string(data), "xthreads/2/access_token")
}

func TestUnknownCommand(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "usage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"usage\"")
}

func TestAccountListShowsConfiguredAccounts(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	stdout, _, err := executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "acc-1")
	assert.Contains(t, stdout, "Primary")
	assert.Contains(t, stdout, "untested")
}

func TestAccountSwitchMarksActive(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-2", "--secret-value", "t")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "account", "switch", "--account", "acc-2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "active account: acc-2")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* acc-2")

	_, _, err = executeCLI(t, home, "account", "switch", "--account", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestAccountSettingsUpdatesAutoSplitAndTag(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	stdout, _, err := executeCLI(t, home, "account", "settings", "--account", "acc-1", "--auto-split=false", "--post-tag", " #golang ")
	require.NoError(t, err)
	assert.Contains(t, stdout, "auto-split=false")
	assert.Contains(t, stdout, "post-tag=#golang")

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "auto-split: off")
	assert.Contains(t, stdout, "post tag: #golang")

	_, _, err = executeCLI(t, home, "account", "settings", "--account", "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no settings to update")
}

func TestAccountRename(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "account", "rename", "--account", "acc-1", "--name", "Work")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Work")
}

func TestPostDryRunDoesNotConnect(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, "http://127.0.0.1:1"))

	stdout, _, err := executeCLI(t, home, "post", "--dry-run", "--text", "- first idea\n- second idea")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Thread Preview")
	assert.Contains(t, stdout, "strategy: list  posts: 2  account: acc-1")
	assert.Contains(t, stdout, "first idea")
	assert.Contains(t, stdout, "second idea")
}

func TestPostDryRunReadsStdin(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	stdout, _, err := executeCLIWithInput(t, home, "THREAD START\none\n---\ntwo\n---\nthree\nTHREAD END\n", "post", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "strategy: thread  posts: 3")
}

func TestPostDryRunScheduled(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	at := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	stdout, _, err := executeCLI(t, home, "post", "--dry-run", "--text", "later", "--at", at)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scheduled for")
}

func TestPostRejectsPastSchedule(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "post", "--text", "late", "--at", "2020-01-01T00:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled time is not in the future")
}

func TestPostRejectsEmptyInput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLIWithInput(t, home, "   \n", "post")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}

func TestPostRejectsTextAndFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "post", "--text", "a", "--file", "note.md")
	require.ErrorIs(t, err, errConflictingInput)
}

func TestPostAndDeleteLastThread(t *testing.T) {
	fake := newFakeMastodon(t)
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, fake.server.URL))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--secret-value", "good-token")
	require.NoError(t, err)

	stdout, stderr, err := executeCLI(t, home, "post", "--text", "- first idea\n- second idea")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "[1/2] "+fake.server.URL+"/@alice/101")
	assert.Contains(t, stdout, "[2/2] "+fake.server.URL+"/@alice/102")
	assert.Contains(t, stderr, "Posting 2 posts")
	assert.Equal(t, []string{"first idea", "second idea"}, fake.texts())
	assert.Equal(t, []string{"", "101"}, fake.replies())

	stdout, _, err = executeCLI(t, home, "status", "--account", "acc-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "connected")
	assert.Contains(t, stdout, "@alice")

	stdout, _, err = executeCLI(t, home, "delete", "--last")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deleted 2 posts")
	assert.Equal(t, []string{"102", "101"}, fake.deletedIDs())

	_, _, err = executeCLI(t, home, "delete", "--last")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post history not found")
}

func TestPostFailsWithRejectedToken(t *testing.T) {
	fake := newFakeMastodon(t)
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, fake.server.URL))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--secret-value", "bad-token")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "post", "--text", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect account acc-1")
	assert.Empty(t, fake.texts())

	stdout, _, err := executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "failed")
}

func TestAccountConnectReportsEachAccount(t *testing.T) {
	fake := newFakeMastodon(t)
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, fake.server.URL))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--secret-value", "good-token")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "auth", "set", "--account", "acc-2", "--server", fake.server.URL, "--secret-value", "bad-token")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "account", "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 accounts failed to connect")
	assert.Contains(t, stdout, "acc-1")
	assert.Contains(t, stdout, "@alice")
	assert.Contains(t, stdout, "acc-2")
	assert.Contains(t, stdout, "failed")
}

func TestDeleteRequiresExactlyOneTarget(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "delete")
	require.ErrorIs(t, err, errDeleteTarget)

	_, _, err = executeCLI(t, home, "delete", "--last", "--id", "1")
	require.ErrorIs(t, err, errDeleteTarget)
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

type fakeMastodon struct {
	server  *httptest.Server
	mu      sync.Mutex
	posted  []postedStatus
	deleted []string
}

type postedStatus struct {
	text    string
	replyTo string
}

func newFakeMastodon(t *testing.T) *fakeMastodon {
	t.Helper()

	fake := &fakeMastodon{}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/accounts/verify_credentials", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"The access token is invalid"}`)
			return
		}
		writeJSON(w, map[string]any{"id": "42", "username": "alice", "acct": "alice"})
	})

	mux.HandleFunc("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		// Slow enough for the spinner to draw a frame.
		time.Sleep(50 * time.Millisecond)

		fake.mu.Lock()
		fake.posted = append(fake.posted, postedStatus{text: r.Form.Get("status"), replyTo: r.Form.Get("in_reply_to_id")})
		id := fmt.Sprintf("%d", 100+len(fake.posted))
		fake.mu.Unlock()

		writeJSON(w, map[string]any{"id": id, "url": fake.server.URL + "/@alice/" + id})
	})

	mux.HandleFunc("/api/v1/statuses/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/statuses/")

		fake.mu.Lock()
		fake.deleted = append(fake.deleted, id)
		fake.mu.Unlock()

		writeJSON(w, map[string]any{"id": id})
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)

	return fake
}

func (f *fakeMastodon) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	texts := make([]string, 0, len(f.posted))
	for _, p := range f.posted {
		texts = append(texts, p.text)
	}
	return texts
}

func (f *fakeMastodon) replies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	replies := make([]string, 0, len(f.posted))
	for _, p := range f.posted {
		replies = append(replies, p.replyTo)
	}
	return replies
}

func (f *fakeMastodon) deletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.deleted...)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	// Keep the pass backend out of reach so secrets land in the file store.
	t.Setenv("PATH", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeAccountsFixture(home string, server string) error {
	configDir := filepath.Join(home, ".xthreads")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	accounts := fmt.Sprintf(`version = 1

[[accounts]]
id = "acc-1"
name = "Primary"

[accounts.metadata]
server = %q

[accounts.auth]
method = ""
secret_ref = ""
`, server)

	return os.WriteFile(filepath.Join(configDir, "accounts.toml"), []byte(accounts), 0o600)
}

func TestAuthSetRejectsAccountIDWithSlash(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeAccountsFixture(home, ""))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "a/b", "--secret-value", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain slashes")
}
