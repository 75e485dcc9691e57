package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneytech/minesweeper/director/constraint"
	"github.com/moneytech/minesweeper/director/random"
	"github.com/moneytech/minesweeper/game"
)

var (
	solveGames    int
	solveDirector = directorValue("constraint")
	dumpLossesDir string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Let a director play games and report its record",
	Long: `solve plays unattended games with the chosen director. Game i
uses seed+i, so a run is reproducible with --seed. Lost games can be
dumped as yaml snapshots for later study.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solveGames, "games", "g", 1, "Number of games to play")
	solveCmd.Flags().Var(&solveDirector, "director", "Director to play with: constraint or random")
	solveCmd.Flags().StringVar(&dumpLossesDir, "dump-losses", "", "Directory to write a yaml snapshot of each lost game into")
	rootCmd.AddCommand(solveCmd)
}

// directorValue is a pflag.Value restricting --director to known names.
type directorValue string

var directorFactories = map[string]func(seed int64) game.Director{
	"random":     func(seed int64) game.Director { return random.New(seed) },
	"constraint": func(seed int64) game.Director { return constraint.New(seed) },
}

func (v *directorValue) String() string { return string(*v) }

func (v *directorValue) Set(value string) error {
	if _, ok := directorFactories[value]; !ok {
		return fmt.Errorf("invalid director (want one of: constraint, random)")
	}
	*v = directorValue(value)
	return nil
}

func (v *directorValue) Type() string { return "director" }

func runSolve(cmd *cobra.Command, args []string) error {
	if solveGames < 1 {
		return fmt.Errorf("--games must be positive, got %d", solveGames)
	}

	base := boardSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	if dumpLossesDir != "" {
		if err := os.MkdirAll(dumpLossesDir, 0o755); err != nil {
			return err
		}
	}

	factory := directorFactories[string(solveDirector)]
	var wins, losses, stalls int

	for i := 0; i < solveGames; i++ {
		seed := base + int64(i)
		board, err := game.NewSeeded(boardRows, boardColumns, boardMines, seed)
		if err != nil {
			return err
		}
		director := factory(seed)

		moves := 0
		for board.State() == game.Ongoing {
			move, ok := director.NextMove(board)
			if !ok {
				break
			}
			move.Apply(board)
			moves++
		}

		entry := log.WithFields(log.Fields{
			"seed":     seed,
			"director": director.Name(),
			"moves":    moves,
			"state":    board.State(),
		})
		switch board.State() {
		case game.Won:
			wins++
			entry.Debug("game won")
		case game.Lost:
			losses++
			entry.Debug("game lost")
			if dumpLossesDir != "" {
				name := filepath.Join(dumpLossesDir, fmt.Sprintf("loss-%d.yaml", seed))
				if err := os.WriteFile(name, []byte(board.Snapshot().Serialize()), 0o644); err != nil {
					return err
				}
			}
		default:
			stalls++
			entry.Debug("game stalled")
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "games:    %d\n", solveGames)
	fmt.Fprintf(out, "wins:     %d\n", wins)
	fmt.Fprintf(out, "losses:   %d\n", losses)
	fmt.Fprintf(out, "stalls:   %d\n", stalls)
	fmt.Fprintf(out, "win rate: %.1f%%\n", float64(wins)/float64(solveGames)*100)
	return nil
}
