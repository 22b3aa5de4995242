// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"context"
	"fmt"
	"os"

	"github.com/luxfi/geth/accounts/keystore"
)

// KeystoreSource decrypts a Web3 secret storage (keystore v3) file.
type KeystoreSource struct {
	path     string
	password string
}

func NewKeystoreSource(path, password string) *KeystoreSource {
	return &KeystoreSource{path: path, password: password}
}

func (*KeystoreSource) Type() SourceType {
	return SourceKeystore
}

func (s *KeystoreSource) Available() bool {
	return s.path != ""
}

func (s *KeystoreSource) Load(_ context.Context) (*Account, error) {
	keyJSON, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore file %s: %w", s.path, err)
	}
	k, err := keystore.DecryptKey(keyJSON, s.password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt %s: %v", ErrInvalidKey, s.path, err)
	}
	return &Account{
		Address:    k.Address,
		PrivateKey: k.PrivateKey,
		Source:     SourceKeystore,
	}, nil
}
