// Command seeder writes a deterministic synthetic league (matches and
// ball-by-ball deliveries) in the layout the API loads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		out     string
		seasons int
		first   int
		seed    int64
		format  string
	)

	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Generate a synthetic matches/deliveries dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seasons < 1 {
				return fmt.Errorf("--seasons must be at least 1")
			}
			g := newGenerator(seed)
			for s := 0; s < seasons; s++ {
				g.season(first + s)
			}
			paths, err := write(g, out, format)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d matches, %d deliveries\n", len(g.matches), len(g.deliveries))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "./data/cleaned", "output directory")
	cmd.Flags().IntVar(&seasons, "seasons", 3, "number of seasons")
	cmd.Flags().IntVar(&first, "first-season", 2008, "first season year")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&format, "format", "csv", "csv or xlsx")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
