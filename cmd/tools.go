package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/tools"
	"github.com/finchline/finchline/internal/xapi"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	RunE:  runTools,
}

func runTools(_ *cobra.Command, _ []string) error {
	// Listing needs no valid credentials; the registry only declares schemas.
	reg := tools.NewRegistry(xapi.New(xapi.Credentials{}), tools.Options{})

	for _, t := range reg.All() {
		fmt.Printf("%s — %s\n", t.Name(), t.Description())
		if req := requiredFields(t.Parameters()); len(req) > 0 {
			fmt.Printf("  required: %s\n", strings.Join(req, ", "))
		}
	}
	fmt.Printf("\n%d tools · finchline v%s\n", len(reg.All()), config.Version)
	return nil
}

func requiredFields(schemaJSON json.RawMessage) []string {
	var doc struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return nil
	}
	return doc.Required
}
