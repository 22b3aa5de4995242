// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUserLogSplitsOutputAndLogs(t *testing.T) {
	require := require.New(t)
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer
	ul := NewUserLog(zap.New(core), &out)

	ul.PrintToUser("deployed at %s", "0x01")
	ul.GreenCheckmarkToUser("done")
	ul.WarnToUser("low balance")
	ul.RedXToUser("failed")

	require.Equal("deployed at 0x01\n✓ done\n⚠ low balance\n✗ failed\n", out.String())
	require.Equal(3, logs.Len())
	require.Equal(1, logs.FilterMessage("⚠ low balance").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintTable(&out, []string{"Contract", "Address"}, [][]string{
		{"MyToken", "0x5FbDB2315678afecb367f032d93F642f64180aa3"},
		{"ScholarshipManager", "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"},
	}))
	printed := out.String()
	require.Contains(t, printed, "ScholarshipManager")
	require.Contains(t, printed, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.Less(t, strings.Index(printed, "MyToken"), strings.Index(printed, "ScholarshipManager"))
}

func TestProgressTrackerWithoutTerminal(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	pt := NewProgressTracker(NewUserLog(zap.NewNop(), &out))
	require.False(pt.isTTY)

	pt.StepStarted("Deploy token")
	pt.WaitingFor("Deploy token", "waiting for MyToken confirmation")
	pt.StepCompleted("Deploy token", "block 7")
	require.Contains(out.String(), "✓ Deploy token (")
	require.Contains(out.String(), "block 7")
	require.NotContains(out.String(), "waiting for")

	pt.StepStarted("Deploy manager")
	pt.StepFailed("Deploy manager", errors.New("reverted"))
	require.Contains(out.String(), "✗ Deploy manager (")
	require.Contains(out.String(), "FAILED: reverted")

	// unknown steps are ignored
	pt.StepCompleted("Deploy manager", "")
	require.Equal(2, strings.Count(out.String(), "\n"))
}
