package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/text-rooms/internal/config"
)

func TestUseTUI(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		stdin   bool
		stdout  bool
		want    bool
		wantErr bool
	}{
		{name: "line", mode: config.UILine, stdin: true, stdout: true, want: false},
		{name: "tui on a terminal", mode: config.UITUI, stdin: true, want: true},
		{name: "tui with piped stdin", mode: config.UITUI, stdin: false, stdout: true, wantErr: true},
		{name: "auto on a terminal", mode: config.UIAuto, stdin: true, stdout: true, want: true},
		{name: "auto with piped stdin", mode: config.UIAuto, stdin: false, stdout: true, want: false},
		{name: "auto with redirected stdout", mode: config.UIAuto, stdin: true, stdout: false, want: false},
	}

	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isTerminal = func(f *os.File) bool {
				if f == os.Stdin {
					return tt.stdin
				}
				return tt.stdout
			}

			got, err := useTUI(tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
