package main

import "github.com/moneytech/minesweeper/cmd"

func main() {
	cmd.Execute()
}
