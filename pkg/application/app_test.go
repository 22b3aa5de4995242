// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/prompts"
	"github.com/luxfi/scholarship-deploy/pkg/prompts/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const hardhatKey0 = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newTestApp(t *testing.T, creds config.Credentials, prompt prompts.Prompter) *App {
	app := New()
	app.Setup(t.TempDir(), zap.NewNop(), &config.Config{Credentials: creds}, prompt)
	return app
}

func TestPaths(t *testing.T) {
	app := newTestApp(t, config.Credentials{}, prompts.NewNonInteractivePrompter())
	require.Equal(t, filepath.Join(app.GetBaseDir(), "logs", "deploy.log"), app.GetLogFile())
}

func TestSignersPrivateKey(t *testing.T) {
	require := require.New(t)
	prompter := &mocks.Prompter{}
	app := newTestApp(t, config.Credentials{PrivateKey: hardhatKey0}, prompter)

	signers, err := app.Signers()
	require.NoError(err)
	accounts, err := signers.Accounts(context.Background())
	require.NoError(err)
	require.Len(accounts, 1)
	require.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", accounts[0].Address.Hex())
	prompter.AssertNotCalled(t, "CapturePassword", mock.Anything)
}

func TestSignersKeystorePrompt(t *testing.T) {
	prompter := &mocks.Prompter{}
	prompter.On("CapturePassword", "Password for keystore key.json").Return("secret", nil).Once()
	app := newTestApp(t, config.Credentials{KeyFile: "key.json"}, prompter)

	_, err := app.Signers()
	require.NoError(t, err)
	prompter.AssertExpectations(t)
}

func TestSignersKeystoreNonInteractive(t *testing.T) {
	app := newTestApp(t, config.Credentials{KeyFile: "key.json"}, prompts.NewNonInteractivePrompter())

	_, err := app.Signers()
	require.ErrorIs(t, err, prompts.ErrNonInteractive)
}
