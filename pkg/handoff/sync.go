// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handoff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
)

// SyncResult lists what Sync changed in the frontend tree.
type SyncResult struct {
	ConfigPath string
	Copied     []ABICopy
}

// Sync applies the hand-off of rec to the frontend at frontendDir: the two
// address exports in the address config file are replaced (or appended) and
// both artifacts are copied from store into the frontend contracts dir.
func Sync(rec *Record, frontendDir string, store *artifact.Store) (*SyncResult, error) {
	addrs, err := rec.Addresses()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(frontendDir, filepath.FromSlash(constants.FrontendAddressConfigPath))
	if err := updateAddressConfig(configPath, addrs); err != nil {
		return nil, err
	}
	res := &SyncResult{ConfigPath: configPath}
	for _, name := range []string{constants.ManagerContractName, constants.TokenContractName} {
		src := store.Path(name)
		if !utils.FileExists(src) {
			return res, fmt.Errorf("%w: %s", constants.ErrArtifactNotFound, src)
		}
		dst := filepath.Join(frontendDir, filepath.FromSlash(FrontendABIPath(name)))
		if err := utils.CopyFile(src, dst); err != nil {
			return res, fmt.Errorf("failed to copy %s artifact: %w", name, err)
		}
		res.Copied = append(res.Copied, ABICopy{From: src, To: dst})
	}
	return res, nil
}

func updateAddressConfig(path string, addrs Addresses) error {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	updated := SetAddressExports(string(content), addrs)
	return utils.WriteFile(path, []byte(updated))
}

// SetAddressExports returns src with the manager and token export lines set
// to addrs. Missing exports are appended; everything else is left as is.
func SetAddressExports(src string, addrs Addresses) string {
	src = setExport(src, constants.ManagerAddressExport, addrs.Manager)
	return setExport(src, constants.TokenAddressExport, addrs.Token)
}

func setExport(src string, name string, addr common.Address) string {
	line := exportLine(name, addr)
	// the line ending is captured so CRLF files keep it
	re := regexp.MustCompile(`(?m)^[ \t]*export[ \t]+const[ \t]+` + regexp.QuoteMeta(name) + `\b[^\r\n]*(\r?)$`)
	if re.MatchString(src) {
		return re.ReplaceAllString(src, strings.ReplaceAll(line, "$", "$$")+"${1}")
	}
	newline := "\n"
	if strings.Contains(src, "\r\n") {
		newline = "\r\n"
	}
	if src != "" && !strings.HasSuffix(src, "\n") {
		src += newline
	}
	return src + line + newline
}

func exportLine(name string, addr common.Address) string {
	return fmt.Sprintf("export const %s = %q;", name, addr.Hex())
}
