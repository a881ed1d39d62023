package migrate

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/praxis-engineering/retrofit/internal/assets"
	"github.com/praxis-engineering/retrofit/internal/checkpoint"
	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/system"
)

func newTestEngine(repo bool) (*Engine, *system.MockFS, *system.MockExecutor) {
	fs := system.NewMockFS()
	fs.AddDir("/p")
	exec := system.NewMockExecutor()
	if repo {
		fs.AddDir("/p/.git")
		exec.AddResponse("git -C /p add -A", []byte(""), nil)
		exec.AddResponse("git -C /p commit -m", []byte(""), nil)
		exec.AddResponse("git -C /p tag -f", []byte(""), nil)
	}
	engine := &Engine{
		FS:  fs,
		Git: &checkpoint.Git{Exec: exec, FS: fs},
	}
	return engine, fs, exec
}

func fullOpts() config.Options {
	return config.Options{Target: "/p", Mode: "full", Commit: false}
}

func TestRun_FreshFullInstall(t *testing.T) {
	engine, fs, _ := newTestEngine(false)

	result, err := engine.Run(context.Background(), fullOpts())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantDirs := []string{
		"/p/docs/design",
		"/p/docs/guides",
		"/p/docs/analysis",
		"/p/docs/references",
		"/p/docs/notes",
		"/p/tests",
	}
	for _, d := range wantDirs {
		if !fs.IsDir(d) {
			t.Errorf("missing directory %s", d)
		}
	}

	wantFiles := []string{
		"/p/.retrofit/standards.md",
		"/p/.retrofit/TASKS.md",
		"/p/.retrofit/config.toml",
		"/p/.retrofit/skills/INDEX.md",
		"/p/.retrofit/skills/debugging/skill.md",
		"/p/.retrofit/commands/plan.md",
		"/p/.retrofit/quality-gate/check_quality.sh",
		"/p/.retrofit/mcp-servers/memory-server.md",
		"/p/docs/notes/PROJECT_PLAN.md",
		"/p/tests/test_basic.py",
	}
	for _, f := range wantFiles {
		if !fs.Exists(f) {
			t.Errorf("missing file %s", f)
		}
	}

	if len(result.Installed) == 0 {
		t.Error("result should record installed files")
	}
	if result.Committed {
		t.Error("local mode should not commit")
	}
	if !result.Ignored {
		t.Error("local mode should update .gitignore")
	}
}

func TestRun_LightSkipsFullOnly(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	opts := fullOpts()
	opts.Mode = "light"

	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if fs.Exists("/p/.retrofit/quality-gate/check_quality.sh") {
		t.Error("LIGHT install should not write the quality gate")
	}
	if fs.Exists("/p/tests/test_basic.py") {
		t.Error("LIGHT install should not write the test scaffold")
	}
	if !fs.Exists("/p/.retrofit/standards.md") {
		t.Error("LIGHT install should still write the standards doc")
	}
}

func TestRun_Idempotent(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	opts := fullOpts()

	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first := map[string]string{}
	for _, p := range fs.Paths() {
		data, _ := fs.GetFile(p)
		first[p] = string(data)
	}

	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second := map[string]string{}
	for _, p := range fs.Paths() {
		data, _ := fs.GetFile(p)
		second[p] = string(data)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("second run changed the filesystem tree")
	}
}

func TestRun_CreateOncePreserved(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	custom := []byte("# My Tasks\n- [x] everything\n")
	fs.AddFile("/p/.retrofit/TASKS.md", custom, 0644)

	if _, err := engine.Run(context.Background(), fullOpts()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, _ := fs.GetFile("/p/.retrofit/TASKS.md")
	if string(data) != string(custom) {
		t.Error("create-once file was overwritten")
	}
}

func TestRun_RefreshOverwrites(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	fs.AddFile("/p/.retrofit/standards.md", []byte("stale v0.1 standards"), 0644)

	result, err := engine.Run(context.Background(), fullOpts())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, _ := fs.GetFile("/p/.retrofit/standards.md")
	want, _ := assets.Read("standards.md")
	if string(data) != string(want) {
		t.Error("refresh file should match the current template")
	}

	refreshed := false
	for _, r := range result.Refreshed {
		if strings.Contains(r, "standards.md") {
			refreshed = true
		}
	}
	if !refreshed {
		t.Error("result should record the refresh")
	}
}

func TestRun_RelocatesLooseDocs(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	fs.AddFile("/p/DESIGN.md", []byte("design"), 0644)
	fs.AddFile("/p/TODO.md", []byte("todo"), 0644)
	fs.AddFile("/p/README.md", []byte("readme"), 0644)

	result, err := engine.Run(context.Background(), fullOpts())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !fs.Exists("/p/docs/design/DESIGN.md") {
		t.Error("DESIGN.md not relocated to docs/design")
	}
	if !fs.Exists("/p/docs/notes/TODO.md") {
		t.Error("TODO.md not relocated to docs/notes")
	}
	if !fs.Exists("/p/README.md") {
		t.Error("protected README.md must stay at the root")
	}
	if fs.Exists("/p/DESIGN.md") {
		t.Error("source of relocated file still present")
	}
	if len(result.Relocated) != 2 {
		t.Errorf("Relocated = %v, want 2 entries", result.Relocated)
	}
}

func TestRun_ExistingDestinationAuthoritative(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	fs.AddFile("/p/DESIGN.md", []byte("new"), 0644)
	fs.AddFile("/p/docs/design/DESIGN.md", []byte("original"), 0644)

	if _, err := engine.Run(context.Background(), fullOpts()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, _ := fs.GetFile("/p/docs/design/DESIGN.md")
	if string(data) != "original" {
		t.Error("pre-existing destination file was clobbered")
	}
	if !fs.Exists("/p/DESIGN.md") {
		t.Error("source should stay put when destination exists")
	}
}

func TestRun_GitMvWhenRepo(t *testing.T) {
	engine, fs, exec := newTestEngine(true)
	fs.AddFile("/p/DESIGN.md", []byte("design"), 0644)
	exec.AddResponse("git -C /p mv DESIGN.md docs/design/DESIGN.md", []byte(""), nil)

	if _, err := engine.Run(context.Background(), fullOpts()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	sawMv := false
	for _, c := range exec.CommandStrings() {
		if strings.HasPrefix(c, "git -C /p mv DESIGN.md") {
			sawMv = true
		}
	}
	if !sawMv {
		t.Errorf("expected git mv, got %v", exec.CommandStrings())
	}
}

func TestRun_IgnoreBlockIdempotent(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	opts := fullOpts()

	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	data, _ := fs.GetFile("/p/.gitignore")
	if got := strings.Count(string(data), ignoreMarker); got != 1 {
		t.Errorf("ignore marker appears %d times, want 1:\n%s", got, data)
	}
	if !strings.Contains(string(data), config.ConfigRoot+"/") {
		t.Error("ignore block missing config root rule")
	}
}

func TestRun_CommitMode(t *testing.T) {
	engine, fs, exec := newTestEngine(true)
	exec.AddResponse("git -C /p status --porcelain", []byte("A  .retrofit/standards.md\n"), nil)
	opts := fullOpts()
	opts.Commit = true

	result, err := engine.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Committed {
		t.Error("commit mode should report Committed")
	}

	// Commit mode keeps the audit log out of version control but must
	// not ignore the config root itself.
	data, _ := fs.GetFile("/p/.gitignore")
	if !strings.Contains(string(data), config.ConfigRoot+"/events.jsonl") {
		t.Errorf("commit mode should ignore the audit log:\n%s", data)
	}
	if strings.Contains(string(data), "\n"+config.ConfigRoot+"/\n") {
		t.Errorf("commit mode must not ignore the config root:\n%s", data)
	}

	var sawCommit, sawTag bool
	for _, c := range exec.CommandStrings() {
		if strings.Contains(c, "commit -m chore: install retrofit toolkit") {
			sawCommit = true
		}
		if strings.Contains(c, "tag -f "+config.TagComplete) {
			sawTag = true
		}
	}
	if !sawCommit {
		t.Errorf("expected structured commit, got %v", exec.CommandStrings())
	}
	if !sawTag {
		t.Error("expected completion tag move")
	}
}

// A second commit-mode run against an unchanged tree must succeed with
// nothing to commit; only the completion tag moves.
func TestRun_CommitModeRerun(t *testing.T) {
	engine, _, exec := newTestEngine(true)
	// Clean status: everything from the first run is already committed.
	exec.AddResponse("git -C /p status --porcelain", []byte(""), nil)
	opts := fullOpts()
	opts.Commit = true

	if _, err := engine.Run(context.Background(), opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	result, err := engine.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("re-run on unchanged tree failed: %v", err)
	}
	if result.Committed {
		t.Error("re-run with nothing to commit should not report Committed")
	}

	for _, c := range exec.CommandStrings() {
		if strings.Contains(c, "commit -m") {
			t.Errorf("unexpected commit command: %s", c)
		}
	}

	sawTag := false
	for _, c := range exec.CommandStrings() {
		if strings.Contains(c, "tag -f "+config.TagComplete) {
			sawTag = true
		}
	}
	if !sawTag {
		t.Error("completion tag should move on every commit-mode run")
	}
}

func TestRun_WriteFailureAborts(t *testing.T) {
	engine, fs, _ := newTestEngine(false)
	fs.WriteFileErr = errInjected

	_, err := engine.Run(context.Background(), fullOpts())
	if err == nil {
		t.Fatal("expected error from injected write failure")
	}
	// The skeleton written before the failure stays in place.
	if !fs.IsDir("/p/docs/design") {
		t.Error("completed skeleton step should not be rolled back")
	}
}

var errInjected = &injectedError{}

type injectedError struct{}

func (*injectedError) Error() string { return "injected write failure" }
