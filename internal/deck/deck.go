// Package deck collects the cards a session starts with.
package deck

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/flashcards/internal/domain"
	"github.com/conorfennell/flashcards/internal/gitsource"
	"github.com/conorfennell/flashcards/internal/knol"
	"github.com/conorfennell/flashcards/internal/parser"
)

// Source names where decks come from. Either field may be empty.
type Source struct {
	// Dir is a local directory of Markdown decks.
	Dir string
	// Repo is a git URL whose checkout is read like Dir.
	Repo string
	// CacheDir holds repository checkouts.
	CacheDir string
}

// Load reads every deck under src. Cards with the same content are
// kept once, in the order first seen. Files that fail to parse are
// logged and skipped; a failed walk or repository sync is an error.
func Load(ctx context.Context, src Source, logger *slog.Logger) ([]domain.Card, error) {
	var dirs []string
	if src.Dir != "" {
		dirs = append(dirs, src.Dir)
	}

	if src.Repo != "" {
		localPath, err := RepoPath(src.CacheDir, src.Repo)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		if err := gitsource.Sync(ctx, src.Repo, localPath, logger); err != nil {
			return nil, err
		}
		dirs = append(dirs, localPath)
	}

	seen := make(map[string]bool)
	var cards []domain.Card
	for _, dir := range dirs {
		found, err := loadDir(dir, logger)
		if err != nil {
			return nil, err
		}
		for _, card := range found {
			hash := knol.Hash(card)
			if seen[hash] {
				logger.Debug("duplicate card skipped", "hash", knol.Short(card))
				continue
			}
			seen[hash] = true
			cards = append(cards, card)
		}
	}

	logger.Info("decks loaded", "sources", len(dirs), "cards", len(cards))
	return cards, nil
}

func loadDir(dir string, logger *slog.Logger) ([]domain.Card, error) {
	var cards []domain.Card
	var parseErrors int

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileCards, err := parser.ParseFile(path)
		if err != nil {
			parseErrors++
			logger.Warn("skipping deck file", "path", path, "error", err)
		}
		cards = append(cards, fileCards...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	logger.Debug("deck directory scanned", "path", dir, "cards", len(cards), "errors", parseErrors)
	return cards, nil
}

// RepoPath maps a repository URL to its checkout directory under
// baseDir: https://host/user/repo.git and git@host:user/repo.git both
// become baseDir/host/user/repo. URLs whose path would leave baseDir
// are rejected.
func RepoPath(baseDir, repoURL string) (string, error) {
	relative, ok := repoDir(repoURL)
	if !ok {
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	localPath := filepath.Join(baseDir, relative)
	rel, err := filepath.Rel(baseDir, localPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("git URL %s escapes the cache directory", repoURL)
	}
	return localPath, nil
}

// repoDir returns the checkout directory for repoURL relative to the
// cache directory.
func repoDir(repoURL string) (string, bool) {
	parsed, err := url.Parse(repoURL)
	if err == nil && (parsed.Scheme == "https" || parsed.Scheme == "http" || parsed.Scheme == "ssh") && parsed.Host != "" {
		return filepath.Join(parsed.Hostname(), strings.TrimSuffix(parsed.Path, ".git")), true
	}

	// scp-like syntax: user@host:path
	userHost, repoPath, ok := strings.Cut(repoURL, ":")
	if ok && !strings.Contains(userHost, "/") {
		if _, host, ok := strings.Cut(userHost, "@"); ok && host != "" && repoPath != "" {
			return filepath.Join(host, strings.TrimSuffix(repoPath, ".git")), true
		}
	}
	if err == nil && parsed.Scheme == "file" {
		return filepath.Join("local", filepath.Base(strings.TrimSuffix(parsed.Path, ".git"))), true
	}
	return "", false
}
