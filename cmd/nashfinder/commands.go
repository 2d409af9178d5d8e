package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	nashfinder "github.com/dmonti/NashFinder"
	"github.com/dmonti/NashFinder/game"
	"github.com/dmonti/NashFinder/matrixgame"
	"github.com/dmonti/NashFinder/nash"
)

func supportsCmd() *cobra.Command {
	var gameFile string
	var balanced bool
	cmd := &cobra.Command{
		Use:   "supports",
		Short: "List every candidate support profile of a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame(gameFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return nashfinder.EnumerateSupportProfiles[string, string](g, balanced,
				func(profile nashfinder.SupportProfile[string, string]) {
					fmt.Fprintf(out, "%v: %v\t%v: %v\n",
						profile.Players[0], profile.Supports[0],
						profile.Players[1], profile.Supports[1])
				})
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "Game file (JSON, optionally gzipped)")
	cmd.Flags().BoolVar(&balanced, "balanced", false, "Only pair supports of equal size")
	cmd.MarkFlagRequired("game")
	return cmd
}

func solveCmd() *cobra.Command {
	var gameFile string
	var params matrixgame.Params
	var numSamples int
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Approximate an equilibrium by fictitious play",
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.NumIterations <= 0 {
				return errors.Errorf("iterations must be positive, got %d", params.NumIterations)
			}

			g, err := loadGame(gameFile)
			if err != nil {
				return err
			}

			solution := matrixgame.Solve(g, params)
			eq, err := nash.ExtractFromResult[string, string](solution, g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printEquilibrium(out, eq)
			rng := rand.New(rand.NewSource(params.Seed))
			for i := 0; i < numSamples; i++ {
				profile, err := nashfinder.SampleProfile(eq, rng)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Sample %d: %s\n", i, strings.Join(profile, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "Game file (JSON, optionally gzipped)")
	cmd.Flags().IntVar(&params.NumIterations, "iterations", 10000, "Number of fictitious play iterations")
	cmd.Flags().Float64Var(&params.MixingLambda, "mixing", 0.0, "Probability of exploring a random action")
	cmd.Flags().Int64Var(&params.Seed, "seed", 1234, "Random seed")
	cmd.Flags().IntVar(&numSamples, "samples", 0, "Number of action profiles to sample from the equilibrium")
	cmd.MarkFlagRequired("game")
	return cmd
}

func extractCmd() *cobra.Command {
	var gameFile, resultFile string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the equilibrium from a solved program",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame(gameFile)
			if err != nil {
				return err
			}

			solution, err := loadSolution(resultFile)
			if err != nil {
				return err
			}

			var result nash.Result[string, string]
			if solution != nil {
				result = solution
			}

			eq, err := nash.ExtractFromResult[string, string](result, g)
			if err != nil {
				return err
			}

			printEquilibrium(cmd.OutOrStdout(), eq)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameFile, "game", "", "Game file (JSON, optionally gzipped)")
	cmd.Flags().StringVar(&resultFile, "result", "", "Solved program (JSON, optionally gzipped)")
	cmd.MarkFlagRequired("game")
	cmd.MarkFlagRequired("result")
	return cmd
}

func printEquilibrium(w io.Writer, eq *nash.Equilibrium[string, string]) {
	if eq == nil {
		fmt.Fprintln(w, "No Nash equilibrium found")
		return
	}

	fmt.Fprintln(w, "Nash equilibrium:")
	fmt.Fprintln(w, eq)
}

func loadGame(filename string) (*game.Bimatrix[string, string], error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	g, err := game.LoadJSON(r)
	return g, errors.Wrapf(err, "loading %v", filename)
}

func loadSolution(filename string) (*nash.Solution[string, string], error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := nash.LoadSolutionJSON(r)
	return s, errors.Wrapf(err, "loading %v", filename)
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}

	return g.f.Close()
}

// openInput opens filename for reading, decompressing it if it ends in .gz.
func openInput(filename string) (io.ReadCloser, error) {
	glog.V(1).Infof("Loading %v", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(filename, ".gz") {
		return f, nil
	}

	r, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "opening %v", filename)
	}

	return gzipFile{r, f}, nil
}
