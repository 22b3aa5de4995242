// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withTTY(t *testing.T, tty bool) {
	orig := stdinIsTTY
	stdinIsTTY = func() bool { return tty }
	t.Cleanup(func() {
		stdinIsTTY = orig
		SetNonInteractive(false)
	})
}

func TestIsNonInteractive_EnvVar(t *testing.T) {
	tests := []struct {
		envValue string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(EnvNonInteractive+"="+tc.envValue, func(t *testing.T) {
			withTTY(t, true)
			t.Setenv(EnvCI, "")
			t.Setenv(EnvNonInteractive, tc.envValue)
			require.Equal(t, tc.expected, IsNonInteractive())
		})
	}
}

func TestIsNonInteractive_CI(t *testing.T) {
	withTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "true")

	require.True(t, IsNonInteractive())
}

func TestIsNonInteractive_ExplicitSetting(t *testing.T) {
	withTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	require.True(t, IsInteractive())
	SetNonInteractive(true)
	require.True(t, IsNonInteractive())
}

func TestIsNonInteractive_NoTTY(t *testing.T) {
	withTTY(t, false)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	require.False(t, IsInteractive())
}

func TestNewPrompterForMode(t *testing.T) {
	withTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	_, ok := NewPrompterForMode().(*realPrompter)
	require.True(t, ok, "expected realPrompter on a terminal")

	SetNonInteractive(true)
	_, ok = NewPrompterForMode().(*NonInteractivePrompter)
	require.True(t, ok, "expected NonInteractivePrompter in non-interactive mode")
}
