// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"path/filepath"

	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/prompts"
	"go.uber.org/zap"
)

type App struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
}

func New() *App {
	return &App{}
}

func (app *App) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *App) GetLogFile() string {
	return filepath.Join(app.GetLogDir(), constants.LogFileName)
}

// Signers builds the account provider from the configured credentials. A
// keystore file without a password is unlocked interactively.
func (app *App) Signers() (*key.ChainProvider, error) {
	creds := app.Conf.Credentials
	if creds.PrivateKey == "" && creds.Mnemonic == "" && creds.KeyFile != "" && creds.KeyPassword == "" {
		password, err := app.Prompt.CapturePassword(fmt.Sprintf("Password for keystore %s", creds.KeyFile))
		if err != nil {
			return nil, fmt.Errorf("keystore %s is locked: %w", creds.KeyFile, err)
		}
		creds.KeyPassword = password
	}
	return key.FromCredentials(creds), nil
}
