// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600

	BaseDirName = ".scholarship-deploy"
	LogDir      = "logs"
	LogFileName = "deploy.log"

	ConfigFileName  = "config"
	LocalConfigName = "scholarship-deploy"
	EnvPrefix       = "SCHOLARSHIP"

	// contracts deployed by a run, in order
	TokenContractName   = "MyToken"
	ManagerContractName = "ScholarshipManager"

	// hardhat build output layout
	DefaultArtifactsDir  = "artifacts"
	ArtifactContractsDir = "contracts"
	SolidityFileSuffix   = ".sol"
	ArtifactFileSuffix   = ".json"

	// frontend layout referenced by the hand-off instructions
	FrontendAddressConfigPath = "src/services/eth.js"
	FrontendContractsDir      = "src/contracts"
	ManagerAddressExport      = "MANAGER_ADDRESS"
	TokenAddressExport        = "TOKEN_ADDRESS"

	DefaultDeploymentsDir = "deployments"
	RecordVersion         = "1.0.0"
	RecordFormatJSON      = "json"
	RecordFormatYAML      = "yaml"

	// BIP44 m/44'/60'/0'/0/i
	BIP44Purpose  = 44
	EthCoinType   = 60
	DefaultHDPath = "m/44'/60'/0'/0/0"

	NativeSymbol = "ETH/CRO"

	DefaultRPCURL            = "http://127.0.0.1:8545"
	DefaultLowBalanceWarning = "0.1"
	RPCRequestTimeout        = 30 * time.Second
	ConfirmationTimeout      = 5 * time.Minute
	StepWarnAfter            = 30 * time.Second
	SpinnerRefreshInterval   = 100 * time.Millisecond
)
