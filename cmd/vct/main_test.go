package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "vct" {
		t.Fatalf("expected root command name vct, got %q", rootCmd.Use)
	}
}
