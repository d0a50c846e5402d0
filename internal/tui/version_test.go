package tui

import "testing"

func TestVersionLabel(t *testing.T) {
	if got := VersionLabel(); got != AppVersion {
		t.Fatalf("VersionLabel = %q, want %q", got, AppVersion)
	}

	oldCommit := GitCommit
	t.Cleanup(func() { GitCommit = oldCommit })
	GitCommit = "abc123"
	if got := VersionLabel(); got != AppVersion+" (abc123 unknown)" {
		t.Fatalf("VersionLabel = %q", got)
	}
}
