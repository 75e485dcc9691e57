package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneytech/minesweeper/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `play runs an interactive game. Commands:

	d ROW, COL   dig at (ROW, COL)
	f ROW, COL   flag (ROW, COL)
	q            quit
`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	board, err := newBoard()
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	redraw(out, board)
	for board.State() == game.Ongoing {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		op, row, column, err := parseCommand(in.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if op == 'q' {
			return nil
		}

		var result game.Result
		if op == 'd' {
			result = board.Dig(row, column)
		} else {
			result = board.Flag(row, column)
		}

		redraw(out, board)
		if result == game.OutOfBounds {
			fmt.Fprintf(out, "(%d, %d) is off the board\n", row, column)
		}
	}

	switch board.State() {
	case game.Lost:
		fmt.Fprintln(out, "BOOM! The board was:")
		fmt.Fprint(out, board.Render(game.Truth))
	case game.Won:
		fmt.Fprintln(out, "All clear. You win!")
	}
	return nil
}

// redraw clears the terminal and reprints the visible plane with a mine
// counter.
func redraw(w io.Writer, board *game.Board) {
	fmt.Fprint(w, "\x1b[1;1H\x1b[2J")
	fmt.Fprint(w, board.Render(game.Visible))
	fmt.Fprintf(w, "mines left: %d\n", board.Mines()-board.Flags())
}

var errBadCommand = errors.New(`commands look like "d ROW, COL", "f ROW, COL", or "q"`)

// parseCommand reads one line of player input. Any verb other than d or q
// flags, so a bare "3, 4" plants a flag rather than risking a dig.
func parseCommand(line string) (op byte, row, column int, err error) {
	fields := strings.Fields(strings.ReplaceAll(strings.TrimSpace(line), ",", " "))
	if len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit") {
		return 'q', 0, 0, nil
	}

	var coords []string
	switch len(fields) {
	case 2:
		op = 'f'
		coords = fields
	case 3:
		op = 'f'
		if fields[0] == "d" {
			op = 'd'
		}
		coords = fields[1:]
	default:
		return 0, 0, 0, errBadCommand
	}

	row, rerr := strconv.Atoi(coords[0])
	column, cerr := strconv.Atoi(coords[1])
	if rerr != nil || cerr != nil {
		return 0, 0, 0, errBadCommand
	}
	return op, row, column, nil
}
