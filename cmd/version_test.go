package cmd

import (
	"bytes"
	"testing"
)

func TestVersionWritesToCommandOutput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got, want := out.String(), "portfolio "+Version+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
