package demo

import (
	"context"

	"pylens/internal/gitinfo"
)

// DiscoveryStep narrates finding the target file. It stats the real target
// (size, mtime) and best-effort reports the last commit touching it; the
// rest of the walkthrough does not depend on the file existing.
type DiscoveryStep struct{}

// Compile-time interface check.
var _ Step = (*DiscoveryStep)(nil)

func (*DiscoveryStep) Name() string  { return "discovery" }
func (*DiscoveryStep) Title() string { return "FILE DISCOVERY" }

func (*DiscoveryStep) Description() string {
	return "Find and analyze Python files related to image segmentation"
}

func (*DiscoveryStep) Tools() []string {
	return []string{"file_search", "read_file", "semantic_search"}
}

// Run stats the target and prints discovery narration.
func (*DiscoveryStep) Run(_ context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("searching for segmentation-related files...\n")

	info, err := env.fs().Stat(env.Target)
	if err != nil {
		n.Warn("target %s not present on disk, continuing with scripted content", env.Target)
		return nil, nil
	}

	n.Ok("found target file: %s", env.Target)
	n.Printf("  file size: %d bytes\n", info.Size())
	n.Printf("  last modified: %s\n", info.ModTime().Format("Mon Jan  2 15:04:05 2006"))

	// Git enrichment is best-effort; files outside a repo are fine.
	if commit, gitErr := gitinfo.LastCommit(env.Target); gitErr == nil {
		hash := commit.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		n.Printf("  last commit: %s by %s (%s)\n", hash, commit.Author, commit.Subject)
	}

	return nil, nil
}
