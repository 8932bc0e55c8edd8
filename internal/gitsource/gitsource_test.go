package gitsource

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// newOrigin creates a repository holding one committed deck file.
func newOrigin(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() returned an unexpected error: %v", err)
	}
	commitFile(t, repo, dir, "deck.md", "Q: What is Go?\nA: A language\n")
	return dir
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() returned an unexpected error: %v", err)
	}
	if _, err := worktree.Add(name); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	_, err = worktree.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit() returned an unexpected error: %v", err)
	}
}

func TestSyncClonesThenPulls(t *testing.T) {
	origin := newOrigin(t)
	local := filepath.Join(t.TempDir(), "checkout")
	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	if err := Sync(ctx, origin, local, logger); err != nil {
		t.Fatalf("Sync() returned an unexpected error on clone: %v", err)
	}
	if _, err := os.Stat(filepath.Join(local, "deck.md")); err != nil {
		t.Fatalf("Expected deck.md in the checkout, got %v", err)
	}

	// A second sync with nothing new must not fail.
	if err := Sync(ctx, origin, local, logger); err != nil {
		t.Fatalf("Sync() returned an unexpected error when up to date: %v", err)
	}
}

func TestSyncRejectsNonRepository(t *testing.T) {
	local := t.TempDir()
	err := Sync(context.Background(), "https://example.invalid/deck.git", local, slog.New(slog.DiscardHandler))
	if err == nil {
		t.Error("Expected an error for a directory that is not a repository")
	}
}
