package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustedtext/trusted/internal/item"
)

// todoFixture is the shared task file for command tests. The pinned
// test date is 2024-03-15, so the tickled item is hidden and nothing
// is overdue enough to change buckets.
const todoFixture = `(A) Call dentist @phone +Health due:2024-03-01
Buy milk @errand
x 2024-01-05 Pay rent @home
Draft proposal @work +Redesign
Waiting on contract @waiting +Redesign
Plan sabbatical @someday
Check tires @errand tickle:2024-06-01
(B) Book flights @phone +Travel due:2024-04-10
`

// runCommand executes the CLI against in-memory sources and a pinned
// date. Returns stdout, stderr, and the command error.
func runCommand(t *testing.T, files map[string]string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	opts := &RootOptions{
		ReadSource: func(path string) ([]string, error) {
			content, ok := files[path]
			if !ok {
				return nil, fmt.Errorf("open %s: no such file", path)
			}
			return splitLines(content), nil
		},
		Now: func() item.Date { return item.Date{Year: 2024, Month: time.March, Day: 15} },
		Out: &out,
		Err: &errOut,
	}

	cmd := newRootCommand(opts)
	// Point config at a path that does not exist unless the test says
	// otherwise, so the working directory cannot leak into the run.
	args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	cmd.SetArgs(args)
	cmd.SetOut(&errOut)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func fixtureFiles() map[string]string {
	return map[string]string{"todo.txt": todoFixture}
}

func TestNextCommand_Golden(t *testing.T) {
	out, _, err := runCommand(t, fixtureFiles(), "next", "todo.txt")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "next", []byte(out))
}

func TestContextsCommand_Golden(t *testing.T) {
	out, _, err := runCommand(t, fixtureFiles(), "contexts", "todo.txt")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "contexts", []byte(out))
}

func TestBucketCommands(t *testing.T) {
	cases := []struct {
		command string
		want    string
	}{
		{"waiting", "todo.txt:5: Waiting on contract @waiting +Redesign\n"},
		{"someday", "todo.txt:6: Plan sabbatical @someday\n"},
		{"tickler", "todo.txt:7: Check tires @errand tickle:2024-06-01\n"},
		{"done", "todo.txt:3: x 2024-01-05 Pay rent @home\n"},
	}
	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			out, _, err := runCommand(t, fixtureFiles(), tc.command, "todo.txt")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestListCommand_ContextFilter(t *testing.T) {
	out, _, err := runCommand(t, fixtureFiles(),
		"list", "todo.txt", "--context", "phone", "--bucket", "next")
	require.NoError(t, err)

	assert.Equal(t,
		"todo.txt:1: (A) Call dentist @phone +Health due:2024-03-01\n"+
			"todo.txt:8: (B) Book flights @phone +Travel due:2024-04-10\n",
		out)
}

func TestListCommand_UnknownBucket(t *testing.T) {
	_, _, err := runCommand(t, fixtureFiles(), "list", "todo.txt", "--bucket", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestJSONOutput(t *testing.T) {
	out, _, err := runCommand(t, fixtureFiles(), "next", "todo.txt", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Raw         string   `json:"raw"`
			Description string   `json:"description"`
			Contexts    []string `json:"contexts"`
			Priority    *string  `json:"priority"`
			Completed   bool     `json:"completed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "(A) Call dentist @phone +Health due:2024-03-01", resp.Data[0].Raw)
	assert.Equal(t, "Call dentist", resp.Data[0].Description)
	assert.Equal(t, []string{"phone"}, resp.Data[0].Contexts)
	require.NotNil(t, resp.Data[0].Priority)
	assert.Equal(t, "A", *resp.Data[0].Priority)
}

func TestJSONOutput_EmptyResultIsArray(t *testing.T) {
	out, _, err := runCommand(t, map[string]string{"empty.txt": ""},
		"next", "empty.txt", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":[]}`, out)
}

func TestTodayFlag_ShiftsBuckets(t *testing.T) {
	// On 2024-07-01 the tickle date has passed and the item surfaces.
	out, _, err := runCommand(t, fixtureFiles(),
		"next", "todo.txt", "--today", "2024-07-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Check tires @errand tickle:2024-06-01")
}

func TestTodayFlag_Invalid(t *testing.T) {
	_, _, err := runCommand(t, fixtureFiles(), "next", "todo.txt", "--today", "yesterday")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUnreadableSourceIsCommandError(t *testing.T) {
	_, _, err := runCommand(t, fixtureFiles(), "next", "missing.txt")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorContains(t, err, "missing.txt")
}

func TestInvalidFormatRejected(t *testing.T) {
	_, _, err := runCommand(t, fixtureFiles(), "next", "todo.txt", "--format", "xml")
	require.Error(t, err)
}

func TestViewCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "trusted.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
views:
  calls:
    bucket: next
    contexts: [phone]
`), 0o644))

	var out, errOut bytes.Buffer
	opts := &RootOptions{
		ReadSource: func(path string) ([]string, error) { return splitLines(todoFixture), nil },
		Now:        func() item.Date { return item.Date{Year: 2024, Month: time.March, Day: 15} },
		Out:        &out,
		Err:        &errOut,
	}
	cmd := newRootCommand(opts)
	cmd.SetArgs([]string{"view", "calls", "todo.txt", "--config", cfgPath})
	cmd.SetOut(&errOut)
	cmd.SetErr(&errOut)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Call dentist")
	assert.Contains(t, out.String(), "Book flights")
	assert.NotContains(t, out.String(), "Buy milk")
}

func TestViewCommand_UnknownView(t *testing.T) {
	_, _, err := runCommand(t, fixtureFiles(), "view", "nope", "todo.txt")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestMultipleSources_RegistrationOrder(t *testing.T) {
	files := map[string]string{
		"second.txt": "from second @x\n",
		"first.txt":  "from first @x\n",
	}
	out, _, err := runCommand(t, files, "next", "second.txt", "first.txt")
	require.NoError(t, err)
	assert.Equal(t,
		"second.txt:1: from second @x\nfirst.txt:1: from first @x\n",
		out)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"), "CRLF is normalized")
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"), "interior blanks survive")
}
