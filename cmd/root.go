package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perovskite",
	Short: "perovskite predicts the band gap of a perovskite composition.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use perovskite, use `perovskite -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPredictionFailed) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
