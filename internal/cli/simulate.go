package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	var opts simulation.Options

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play automated matches and report the results",
		Long: `Play many matches where a strategy fires for the human side against the
automated opponent. Matches run concurrently; results are reproducible for a
given --seed regardless of --workers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := cfg.SeedValue()
			if err != nil {
				return err
			}
			if seed != nil {
				opts.Seed = *seed
			} else {
				opts.Seed = uint64(time.Now().UnixNano())
			}

			report, err := simulation.NewRunner(logger).Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out.Print(report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Games, "games", "n", 100, "Number of matches to play")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Concurrent matches (default GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.Shooter, "shooter", model.BotStrategyHuntTarget, "Strategy firing for the human side: random, hunt_target")

	return cmd
}
