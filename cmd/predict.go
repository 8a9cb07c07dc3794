package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/narasux/perovskite/pkg/client"
	"github.com/narasux/perovskite/pkg/envs"
	"github.com/narasux/perovskite/pkg/loader"
	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/predictor"
	"github.com/narasux/perovskite/pkg/presenter"
)

// errPredictionFailed 预测失败，失败信息已由 presenter 输出
var errPredictionFailed = errors.New("prediction failed")

// NewPredictCmd ...
func NewPredictCmd() *cobra.Command {
	var (
		compositionFile string
		entries         []string
		endpoint        string
		timeout         time.Duration
		dryRun          bool
	)

	predictCmd := cobra.Command{
		Use:   "predict",
		Short: "Predict the band gap of an A-site composition.",
		Example: "  perovskite predict --a-site MA=0.5 --a-site Cs=0.5\n" +
			"  perovskite predict --file composition.yaml --dry-run",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogger()

			f, err := loader.New(compositionFile, entries).Exec()
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			p := predictor.New(
				f,
				client.New(endpoint, client.WithBasicAuth(envs.PredictionAPIUser, envs.PredictionAPIPassword)),
				presenter.New(presenter.NewTerminalView(out), presenter.NewTerminalNotifier(errOut)),
			)

			if dryRun {
				req, err := p.Preview()
				if err != nil {
					return err
				}
				body, _ := json.MarshalIndent(req, "", "  ")
				fmt.Fprintln(out, string(body))
				return nil
			}

			// 预测服务本身不限时，需要时由调用方指定
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if _, err = p.Submit(ctx); err != nil {
				// 失败信息已经展示过，不再重复输出错误与用法
				cmd.SilenceErrors, cmd.SilenceUsage = true, true
				return errPredictionFailed
			}
			return nil
		},
	}

	predictCmd.Flags().StringVarP(&compositionFile, "file", "f", "", "yaml file with the a_site entries")
	predictCmd.Flags().StringArrayVar(&entries, "a-site", nil, "A-site entry as NAME=FRACTION, repeatable")
	predictCmd.Flags().StringVar(&endpoint, "endpoint", envs.PredictionAPIBaseURL, "prediction service base url")
	predictCmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this duration, 0 means wait forever")
	predictCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the request instead of sending it")

	return &predictCmd
}

func init() {
	rootCmd.AddCommand(NewPredictCmd())
}
