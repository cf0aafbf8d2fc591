package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/aurora-render/aurora/pkg/bsdf"
)

// ListModels prints the registered scattering models and their declared
// parameter metadata.
func ListModels(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Model", "Parameter", "Type", "Use", "Default"})

	for _, model := range bsdf.Models() {
		metadata, _ := bsdf.InputMetadata(model)
		for _, spec := range metadata {
			use := "optional"
			def := fmt.Sprintf("%v", spec.Default)
			if spec.Required {
				use = "required"
				def = "-"
			}
			table.Append([]string{model, spec.Name, spec.Type.String(), use, def})
		}
	}

	table.Render()
	fmt.Print(buf.String())
	return nil
}
