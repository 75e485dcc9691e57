package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneytech/minesweeper/game"
)

var (
	genDig      string
	genSnapshot bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a board, make one dig, and print both planes",
	Long: `gen rolls a board, performs an opening dig (the center unless
--dig says otherwise), and prints the truth and visible planes. Useful
for eyeballing mine placement and the opening cascade for a seed.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genDig, "dig", "", "Opening dig as ROW,COL (default: board center)")
	genCmd.Flags().BoolVar(&genSnapshot, "snapshot", false, "Also print the yaml snapshot")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	board, err := newBoard()
	if err != nil {
		return err
	}

	row, column := board.Rows()/2, board.Columns()/2
	if genDig != "" {
		if _, err := fmt.Sscanf(genDig, "%d,%d", &row, &column); err != nil {
			return fmt.Errorf("invalid --dig %q: want ROW,COL", genDig)
		}
	}
	if board.Dig(row, column) == game.OutOfBounds {
		return fmt.Errorf("dig (%d, %d) is off the %dx%d board", row, column, board.Rows(), board.Columns())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed: %d\n", board.Seed())
	fmt.Fprintln(out, "truth:")
	fmt.Fprint(out, board.Render(game.Truth))
	fmt.Fprintln(out, "visible after opening dig:")
	fmt.Fprint(out, board.Render(game.Visible))
	if genSnapshot {
		fmt.Fprintln(out, "snapshot:")
		fmt.Fprint(out, board.Snapshot().Serialize())
	}
	return nil
}
