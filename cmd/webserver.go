package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/router"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server with the composition form.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		color.Green("Prediction service: %s", envs.PredictionAPIBaseURL)
		router.InitRouter()
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
