package system

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFS_ReadWrite(t *testing.T) {
	m := NewMockFS()

	if err := m.WriteFile("/project/README.md", []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := m.ReadFile("/project/README.md")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q, want %q", data, "hello")
	}

	if _, err := m.ReadFile("/project/missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMockFS_Rename(t *testing.T) {
	m := NewMockFS()
	m.AddFile("/project/DESIGN.md", []byte("design"), 0644)

	if err := m.Rename("/project/DESIGN.md", "/project/docs/design/DESIGN.md"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if m.Exists("/project/DESIGN.md") {
		t.Error("old path should not exist after rename")
	}
	data, ok := m.GetFile("/project/docs/design/DESIGN.md")
	if !ok || string(data) != "design" {
		t.Errorf("content not preserved across rename: %q", data)
	}
}

func TestMockFS_MkdirAllAndReadDir(t *testing.T) {
	m := NewMockFS()

	if err := m.MkdirAll("/project/docs/guides", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if !m.IsDir("/project/docs") {
		t.Error("parent directory should exist")
	}

	m.AddFile("/project/docs/NOTES.md", []byte("n"), 0644)

	entries, err := m.ReadDir("/project/docs")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir returned %d entries, want 2", len(entries))
	}
}

func TestMockFS_AppendFile(t *testing.T) {
	m := NewMockFS()
	m.AddFile("/project/.gitignore", []byte("node_modules\n"), 0644)

	if err := m.AppendFile("/project/.gitignore", []byte(".retrofit/\n"), 0644); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}

	data, _ := m.GetFile("/project/.gitignore")
	if string(data) != "node_modules\n.retrofit/\n" {
		t.Errorf("AppendFile content = %q", data)
	}
}

func TestMockExecutor_Responses(t *testing.T) {
	e := NewMockExecutor()
	e.AddResponse("git -C /p rev-list --count --since=30.days HEAD", []byte("7\n"), nil)
	e.DefaultResponse = MockResponse{Output: nil, Err: errors.New("no response")}

	out, err := e.Execute(context.Background(), "git", "-C", "/p", "rev-list", "--count", "--since=30.days", "HEAD")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(out) != "7\n" {
		t.Errorf("Execute output = %q", out)
	}

	if _, err := e.Execute(context.Background(), "jj", "status"); err == nil {
		t.Error("unmatched command should return default error")
	}

	if len(e.Commands) != 2 {
		t.Errorf("recorded %d commands, want 2", len(e.Commands))
	}
}

func TestMockExecutor_PrefixMatch(t *testing.T) {
	e := NewMockExecutor()
	e.AddResponse("git -C /p tag -f", []byte(""), nil)

	_, err := e.Execute(context.Background(), "git", "-C", "/p", "tag", "-f", "retrofit-start")
	if err != nil {
		t.Fatalf("prefix match should succeed: %v", err)
	}
}
