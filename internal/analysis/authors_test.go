package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsift/gitsift/internal/history"
)

func TestAuthors(t *testing.T) {
	entries := Authors(sampleHistory(), AuthorOptions{})

	require.Len(t, entries, 2)

	alice := entries[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, 5, alice.Commits)
	assert.Equal(t, 97, alice.Added)
	assert.Equal(t, 19, alice.Deleted)
	assert.Equal(t, 5, alice.FilesChanged, "Alice touched all five files")

	bob := entries[1]
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, 2, bob.Commits)
	assert.Equal(t, 16, bob.Added)
	assert.Equal(t, 5, bob.Deleted)
	assert.Equal(t, 2, bob.FilesChanged)
}

func TestAuthors_CommitCountOnly(t *testing.T) {
	// Bulk churn must not outrank commit count.
	commits := []history.Commit{
		{Hash: "a1", Author: "Steady", Files: []history.FileChange{{Path: "a.go", Added: 1}}},
		{Hash: "a2", Author: "Steady", Files: []history.FileChange{{Path: "a.go", Added: 1}}},
		{Hash: "b1", Author: "Bulk", Files: []history.FileChange{{Path: "gen.go", Added: 100000}}},
	}

	entries := Authors(commits, AuthorOptions{})
	require.Len(t, entries, 2)
	assert.Equal(t, "Steady", entries[0].Name, "order is by commits, never churn")
}

func TestAuthors_ExactStringIdentity(t *testing.T) {
	// Author identity is the exact display string; no merging.
	commits := []history.Commit{
		{Hash: "a", Author: "Jane Doe", Files: []history.FileChange{{Path: "a.go"}}},
		{Hash: "b", Author: "jane doe", Files: []history.FileChange{{Path: "a.go"}}},
	}

	entries := Authors(commits, AuthorOptions{})
	assert.Len(t, entries, 2)
}

func TestAuthors_BinaryChange(t *testing.T) {
	commits := []history.Commit{
		{Hash: "a", Author: "Ann", Files: []history.FileChange{
			{Path: "logo.png", Binary: true},
			{Path: "main.go", Added: 3, Deleted: 1},
		}},
	}

	entries := Authors(commits, AuthorOptions{})
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Commits)
	assert.Equal(t, 3, entries[0].Added, "binary files add no lines")
	assert.Equal(t, 1, entries[0].Deleted)
	assert.Equal(t, 2, entries[0].FilesChanged, "binary files still count as touched")
}

func TestAuthors_TopCap(t *testing.T) {
	var commits []history.Commit
	for i := 0; i < 20; i++ {
		commits = append(commits, history.Commit{
			Hash:   fmt.Sprintf("c%d", i),
			Author: fmt.Sprintf("author-%02d", i),
			Files:  []history.FileChange{{Path: "a.go"}},
		})
	}

	assert.Len(t, Authors(commits, AuthorOptions{}), DefaultAuthorTop, "default cap is 15")
	assert.Len(t, Authors(commits, AuthorOptions{Top: 4}), 4)
}

func TestAuthors_EmptyInput(t *testing.T) {
	assert.Empty(t, Authors(nil, AuthorOptions{}))
}
