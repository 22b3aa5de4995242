// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package handoff passes deployed addresses and ABIs on to the frontend
// codebase, either as printed instructions, as a machine readable record, or
// by applying the changes directly.
package handoff

import (
	"io"
	"path"
	"text/template"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
)

// Addresses are the two values the frontend needs.
type Addresses struct {
	Token   common.Address
	Manager common.Address
}

// ABICopy is one artifact file the frontend must receive.
type ABICopy struct {
	From string
	To   string
}

// ABICopies lists the artifact copies in the order they are presented.
func ABICopies() []ABICopy {
	return []ABICopy{
		abiCopy(constants.ManagerContractName),
		abiCopy(constants.TokenContractName),
	}
}

func abiCopy(contractName string) ABICopy {
	return ABICopy{
		From: artifact.RelPath(contractName),
		To:   FrontendABIPath(contractName),
	}
}

// FrontendABIPath is where the frontend expects the artifact of contractName.
func FrontendABIPath(contractName string) string {
	return path.Join(constants.FrontendContractsDir, contractName+constants.ArtifactFileSuffix)
}

var instructionsTmpl = template.Must(template.New("instructions").Parse(
	`
===================================================
⚠️  ACTION REQUIRED FOR THE FRONTEND  ⚠️
===================================================
1️⃣  Open '{{.ConfigPath}}' and replace with:
---------------------------------------------------
export const {{.ManagerExport}} = "{{.Manager}}";
export const {{.TokenExport}} = "{{.Token}}";
---------------------------------------------------
2️⃣  Update the ABIs (required, stale ABIs break the frontend):
{{- range $i, $c := .Copies}}
{{- if $i}}
{{end}}
   👉 Copy: {{$c.From}}
   👉 Paste over: {{$c.To}}
{{- end}}
{{- if .RecordPath}}

   Or apply both steps with:
   scholarship-deploy frontend sync --record {{.RecordPath}}
{{- end}}
===================================================
`))

type instructionsData struct {
	ConfigPath    string
	ManagerExport string
	TokenExport   string
	Manager       string
	Token         string
	Copies        []ABICopy
	RecordPath    string
}

// RenderInstructions writes the manual follow-up block for addrs. recordPath
// is mentioned as a shortcut when not empty.
func RenderInstructions(w io.Writer, addrs Addresses, recordPath string) error {
	return instructionsTmpl.Execute(w, instructionsData{
		ConfigPath:    constants.FrontendAddressConfigPath,
		ManagerExport: constants.ManagerAddressExport,
		TokenExport:   constants.TokenAddressExport,
		Manager:       addrs.Manager.Hex(),
		Token:         addrs.Token.Hex(),
		Copies:        ABICopies(),
		RecordPath:    recordPath,
	})
}
