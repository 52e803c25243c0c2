package terminal

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var friday = time.Date(2025, 3, 14, 12, 30, 0, 0, time.FixedZone("KST", 9*60*60))

func emptyNotion(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [], "has_more": false, "next_cursor": null}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestCLI(t *testing.T, out *bytes.Buffer, notionURL string) (*CLI, []string) {
	t.Helper()
	t.Setenv("NOTION_KEY", "test-notion")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")

	cli := NewCLI(Options{
		Output:        out,
		Logs:          &bytes.Buffer{},
		Version:       "1.2.3",
		Clock:         func() time.Time { return friday },
		NotionBaseURL: notionURL,
	})
	global := []string{"--credentials", filepath.Join(t.TempDir(), "missing.ini")}
	return cli, global
}

func TestCLI_Version(t *testing.T) {
	var out bytes.Buffer
	cli, _ := newTestCLI(t, &out, "")

	require.NoError(t, cli.ExecuteContext(context.Background(), "version"))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestCLI_Schedule(t *testing.T) {
	var out bytes.Buffer
	cli, global := newTestCLI(t, &out, "")

	require.NoError(t, cli.ExecuteContext(context.Background(), append([]string{"schedule"}, global...)...))
	assert.Contains(t, out.String(), "- Friday    12:00  행궁 테네스")
	assert.Contains(t, out.String(), "- Sunday    13:00  팔달맥주")
}

func TestCLI_Preview(t *testing.T) {
	var out bytes.Buffer
	cli, global := newTestCLI(t, &out, emptyNotion(t).URL)

	args := append([]string{"preview", "--unit", "심금", "--no-ai", "--date", "2025-03-10"}, global...)
	require.NoError(t, cli.ExecuteContext(context.Background(), args...))

	text := out.String()
	assert.Contains(t, text, "심금 데일리 브리핑 : 2025-03-10")
	assert.Contains(t, text, "- 최근 7일 설문 데이터 없음")
	assert.Contains(t, text, "- 회의록 없음")
}

func TestCLI_PreviewUnknownUnit(t *testing.T) {
	var out bytes.Buffer
	cli, global := newTestCLI(t, &out, emptyNotion(t).URL)

	err := cli.ExecuteContext(context.Background(), append([]string{"preview", "--unit", "없음", "--no-ai"}, global...)...)
	assert.ErrorContains(t, err, "unknown unit")
}

func TestCLI_RunDryRun(t *testing.T) {
	var out bytes.Buffer
	cli, global := newTestCLI(t, &out, emptyNotion(t).URL)

	args := append([]string{"run", "--dry-run", "--no-ai"}, global...)
	require.NoError(t, cli.ExecuteContext(context.Background(), args...))

	text := out.String()
	assert.Contains(t, text, "--- chat -5091670164 ---")
	assert.Contains(t, text, "1 delivered, 0 failed, 0 skipped")
}

func TestCLI_RunWithoutBotToken(t *testing.T) {
	var out bytes.Buffer
	cli, global := newTestCLI(t, &out, emptyNotion(t).URL)

	err := cli.ExecuteContext(context.Background(), append([]string{"run", "--no-ai"}, global...)...)
	assert.ErrorContains(t, err, "telegram")
}
