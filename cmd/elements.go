package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/narasux/perovskite/pkg/model"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "elements list the elements selectable on each site.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, site := range []model.Site{model.SiteA, model.SiteB, model.SiteC} {
			names := lo.Map(model.ElementsOf(site), func(e model.Element, _ int) string { return e.String() })
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.CyanString("%s-site:", site), strings.Join(names, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
