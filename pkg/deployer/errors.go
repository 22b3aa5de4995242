// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deployer

import "fmt"

// ConfigurationError reports that the run could not start, e.g. no usable
// deployer account. No transaction has been sent when it is returned.
type ConfigurationError struct {
	Step Step
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error during %q: %v", e.Step, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DeploymentError reports a failed contract deployment: submission failure,
// revert, confirmation timeout or an unresolvable artifact. Contracts
// deployed by earlier steps stay on chain.
type DeploymentError struct {
	Step     Step
	Contract string
	Err      error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment of %s failed: %v", e.Contract, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}
