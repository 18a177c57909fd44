// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

// Package gitinfo answers a single question: which commit last touched a
// given file. It is best-effort; callers treat any error as "no git info".
package gitinfo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
)

// CommitInfo describes the most recent commit touching a file.
type CommitInfo struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// LastCommit opens the repository containing path (walking up to find .git)
// and returns the newest commit that modified it. Returns an error when the
// file is not inside a git repository or has no history.
func LastCommit(path string) (*CommitInfo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repo for %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	relPath, err := filepath.Rel(wt.Filesystem.Root(), absPath)
	if err != nil {
		return nil, fmt.Errorf("relativizing %s: %w", path, err)
	}
	relPath = filepath.ToSlash(relPath)

	iter, err := repo.Log(&git.LogOptions{
		FileName: &relPath,
		Order:    git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("log for %s: %w", relPath, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return nil, fmt.Errorf("no history for %s: %w", relPath, err)
	}

	subject := commit.Message
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		subject = subject[:i]
	}

	return &CommitInfo{
		Hash:    commit.Hash.String(),
		Author:  commit.Author.Name,
		When:    commit.Author.When,
		Subject: subject,
	}, nil
}
