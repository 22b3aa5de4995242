// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"path/filepath"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/internal/mocks"
	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/handoff"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"github.com/luxfi/scholarship-deploy/pkg/prompts"
	promptmocks "github.com/luxfi/scholarship-deploy/pkg/prompts/mocks"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const hardhatKey0 = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	tokenAddr    = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	managerAddr  = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
)

func byDeployer() interface{} {
	return mock.MatchedBy(func(a *key.Account) bool { return a.Address == deployerAddr })
}

func forContract(name string) interface{} {
	return mock.MatchedBy(func(req models.DeployRequest) bool { return req.ContractName == name })
}

var _ = ginkgo.Describe("scholarship-deploy", func() {
	var (
		testApp    *application.App
		ledger     *mocks.Ledger
		factory    *mocks.ContractFactory
		out        *bytes.Buffer
		recordPath string
		closed     bool
	)

	execute := func(cmd *cobra.Command, args ...string) error {
		cmd.SetOut(out)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	ginkgo.BeforeEach(func() {
		ledger = &mocks.Ledger{}
		factory = &mocks.ContractFactory{}
		out = &bytes.Buffer{}
		closed = false
		recordPath = filepath.Join(ginkgo.GinkgoT().TempDir(), "deployments", "31337.json")

		threshold, err := utils.ParseEther(constants.DefaultLowBalanceWarning)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		testApp = application.New()
		testApp.Setup(ginkgo.GinkgoT().TempDir(), zap.NewNop(), &config.Config{
			RPCURL:            constants.DefaultRPCURL,
			ArtifactsDir:      constants.DefaultArtifactsDir,
			RecordFile:        recordPath,
			RecordFormat:      constants.RecordFormatJSON,
			LowBalanceWarning: threshold,
			Credentials:       config.Credentials{PrivateKey: hardhatKey0},
		}, prompts.NewNonInteractivePrompter())

		orig := newEnvironment
		newEnvironment = func(context.Context, *application.App) (*environment, error) {
			return &environment{
				Ledger:  ledger,
				Factory: factory,
				ChainID: big.NewInt(31337),
				RPCURL:  constants.DefaultRPCURL,
				Close:   func() { closed = true },
			}, nil
		}
		ginkgo.DeferCleanup(func() {
			newEnvironment = orig
		})
	})

	ginkgo.Describe("deploy", func() {
		ginkgo.It("deploys both contracts and hands them off to the frontend", func() {
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(big.NewInt(1e18), nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), forContract(constants.TokenContractName)).
				Return(&models.Deployment{ContractName: constants.TokenContractName, Address: tokenAddr, BlockNumber: 1}, nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), mock.MatchedBy(func(req models.DeployRequest) bool {
				return req.ContractName == constants.ManagerContractName &&
					len(req.Args) == 1 && req.Args[0] == tokenAddr
			})).Return(&models.Deployment{
				ContractName:    constants.ManagerContractName,
				Address:         managerAddr,
				BlockNumber:     2,
				ConstructorArgs: []string{tokenAddr.Hex()},
			}, nil).Once()

			err := execute(NewCmd(testApp))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			ledger.AssertExpectations(ginkgo.GinkgoT())
			factory.AssertExpectations(ginkgo.GinkgoT())
			gomega.Expect(closed).Should(gomega.BeTrue())

			printed := out.String()
			gomega.Expect(printed).Should(gomega.ContainSubstring("👤 Deployer wallet: " + deployerAddr.Hex()))
			gomega.Expect(printed).Should(gomega.ContainSubstring("💰 Wallet balance: 1.0 ETH/CRO"))
			gomega.Expect(printed).Should(gomega.ContainSubstring("✅ MyToken deployed at: " + tokenAddr.Hex()))
			gomega.Expect(printed).Should(gomega.ContainSubstring("✅ ScholarshipManager deployed at: " + managerAddr.Hex()))
			gomega.Expect(printed).Should(gomega.ContainSubstring(`export const MANAGER_ADDRESS = "` + managerAddr.Hex() + `";`))
			gomega.Expect(printed).Should(gomega.ContainSubstring(`export const TOKEN_ADDRESS = "` + tokenAddr.Hex() + `";`))
			gomega.Expect(printed).ShouldNot(gomega.ContainSubstring("Balance is below"))

			rec, err := handoff.ReadRecord(recordPath)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(rec.Network.ChainID).Should(gomega.Equal("31337"))
			addrs, err := rec.Addresses()
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(addrs.Manager).Should(gomega.Equal(managerAddr))
		})

		ginkgo.It("fails before deploying when no signer is configured", func() {
			testApp.Conf.Credentials = config.Credentials{}

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrNoSigner))
			var cerr *deployer.ConfigurationError
			gomega.Expect(err).Should(gomega.BeAssignableToTypeOf(cerr))
			factory.AssertNotCalled(ginkgo.GinkgoT(), "Deploy", mock.Anything, mock.Anything, mock.Anything)
			gomega.Expect(recordPath).ShouldNot(gomega.BeAnExistingFile())
		})

		ginkgo.It("reports the missing signer before contacting the node", func() {
			testApp.Conf.Credentials = config.Credentials{}
			dialed := false
			newEnvironment = func(context.Context, *application.App) (*environment, error) {
				dialed = true
				return nil, errors.New("failed to get chain ID from http://127.0.0.1:1: connection refused")
			}

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrNoSigner))
			var cerr *deployer.ConfigurationError
			gomega.Expect(errors.As(err, &cerr)).Should(gomega.BeTrue())
			gomega.Expect(cerr.Step).Should(gomega.Equal(deployer.StepResolveSigner))
			gomega.Expect(dialed).Should(gomega.BeFalse())
		})

		ginkgo.It("prints where the full log is when the run fails", func() {
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(big.NewInt(1e18), nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), forContract(constants.TokenContractName)).
				Return(nil, constants.ErrConfirmationTimeout).Once()

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrConfirmationTimeout))
			gomega.Expect(out.String()).Should(gomega.ContainSubstring("Full log: " + testApp.GetLogFile()))
		})

		ginkgo.It("keeps MyToken when ScholarshipManager fails", func() {
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(big.NewInt(0), nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), forContract(constants.TokenContractName)).
				Return(&models.Deployment{ContractName: constants.TokenContractName, Address: tokenAddr}, nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), forContract(constants.ManagerContractName)).
				Return(nil, constants.ErrDeploymentReverted).Once()

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrDeploymentReverted))
			printed := out.String()
			gomega.Expect(printed).Should(gomega.ContainSubstring("Balance is below"))
			gomega.Expect(printed).Should(gomega.ContainSubstring("MyToken remains deployed at " + tokenAddr.Hex()))
			gomega.Expect(printed).ShouldNot(gomega.ContainSubstring("ACTION REQUIRED"))
			gomega.Expect(recordPath).ShouldNot(gomega.BeAnExistingFile())
		})

		ginkgo.It("stops when the deployment is not confirmed", func() {
			prompter := &promptmocks.Prompter{}
			prompter.On("CaptureNoYes", "Deploy MyToken and ScholarshipManager to chain 31337?").Return(false, nil).Once()
			testApp.Prompt = prompter
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(big.NewInt(1e18), nil).Once()

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrUserAborted))
			prompter.AssertExpectations(ginkgo.GinkgoT())
			factory.AssertNotCalled(ginkgo.GinkgoT(), "Deploy", mock.Anything, mock.Anything, mock.Anything)
		})

		ginkgo.It("skips the confirmation with --yes", func() {
			testApp.Conf.AssumeYes = true
			testApp.Prompt = &promptmocks.Prompter{}
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(big.NewInt(1e18), nil).Once()
			factory.On("Deploy", mock.Anything, byDeployer(), forContract(constants.TokenContractName)).
				Return(nil, constants.ErrConfirmationTimeout).Once()

			err := execute(NewCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrConfirmationTimeout))
			factory.AssertNumberOfCalls(ginkgo.GinkgoT(), "Deploy", 1)
		})
	})

	ginkgo.Describe("balance", func() {
		ginkgo.It("lists the deployer accounts with their balances", func() {
			ledger.On("BalanceAt", mock.Anything, deployerAddr).Return(new(big.Int).Mul(big.NewInt(10000), big.NewInt(1e18)), nil).Once()

			err := execute(NewBalanceCmd(testApp))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			printed := out.String()
			gomega.Expect(printed).Should(gomega.ContainSubstring("Chain ID 31337"))
			gomega.Expect(printed).Should(gomega.ContainSubstring(deployerAddr.Hex()))
			gomega.Expect(printed).Should(gomega.ContainSubstring("10,000.0 ETH/CRO"))
			gomega.Expect(printed).Should(gomega.ContainSubstring(string(key.SourcePrivateKey)))
			factory.AssertNotCalled(ginkgo.GinkgoT(), "Deploy", mock.Anything, mock.Anything, mock.Anything)
		})

		ginkgo.It("fails without any account", func() {
			testApp.Conf.Credentials = config.Credentials{}
			err := execute(NewBalanceCmd(testApp))
			gomega.Expect(err).Should(gomega.MatchError(constants.ErrNoSigner))
			ledger.AssertNotCalled(ginkgo.GinkgoT(), "BalanceAt", mock.Anything, mock.Anything)
		})
	})

	ginkgo.DescribeTable("chain ID verification",
		func(expected *big.Int, actual int64, ok bool) {
			err := verifyChainID(expected, big.NewInt(actual))
			if ok {
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			} else {
				gomega.Expect(err).Should(gomega.MatchError(constants.ErrChainIDMismatch))
			}
		},
		ginkgo.Entry("not configured", (*big.Int)(nil), int64(25), true),
		ginkgo.Entry("matching", big.NewInt(25), int64(25), true),
		ginkgo.Entry("mismatch", big.NewInt(338), int64(25), false),
	)
})
