package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneytech/minesweeper/game"
)

var (
	boardRows    int
	boardColumns int
	boardMines   int
	boardSeed    int64
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play, solve, and serve terminal Minesweeper",
	Long: `minesweeper is a Minesweeper board engine with interactive,
batch, and HTTP front ends.

Play a game in the terminal
	minesweeper play

Let a director play a thousand games and report its record
	minesweeper solve --games 1000 --director constraint

Serve games over HTTP
	minesweeper serve
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		log.SetLevel(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&boardRows, "rows", "r", 10, "Rows in the game board")
	rootCmd.PersistentFlags().IntVarP(&boardColumns, "columns", "c", 10, "Columns in the game board")
	rootCmd.PersistentFlags().IntVarP(&boardMines, "mines", "m", 20, "Number of mines to place in the game board")
	rootCmd.PersistentFlags().Int64VarP(&boardSeed, "seed", "s", 0, "Seed for mine placement (0 means time-based)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity (trace, debug, info, warn, error)")
}

// newBoard builds a board from the shared flags, time-seeding when no
// explicit seed was given.
func newBoard() (*game.Board, error) {
	if boardSeed != 0 {
		return game.NewSeeded(boardRows, boardColumns, boardMines, boardSeed)
	}
	return game.New(boardRows, boardColumns, boardMines)
}
