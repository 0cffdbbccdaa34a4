package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	assert.Equal(t, "dev (commit: unknown, built: unknown)", GetVersionString())

	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
	Version, Commit = "v1.2.0", "abc123"
	assert.Equal(t, "v1.2.0 (commit: abc123, built: unknown)", GetVersionString())
}
