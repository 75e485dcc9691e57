package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneytech/minesweeper/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP",
	Long: `serve exposes the engine as a small JSON API:

	POST /games                create a game
	GET  /games/{id}           fetch its state
	POST /games/{id}/dig       dig a cell
	POST /games/{id}/flag      flag a cell
	GET  /games/{id}/render    plain-text board

ADDR and LOG_LEVEL are read from the environment or a .env file.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q", lvl)
		}
		log.SetLevel(level)
	}

	addr := serveAddr
	if env := os.Getenv("ADDR"); env != "" && !cmd.Flags().Changed("addr") {
		addr = env
	}

	srv := server.New(log.StandardLogger())
	log.WithField("addr", addr).Info("serving minesweeper")
	return http.ListenAndServe(addr, srv.Router())
}
