package main

import (
	"flag"
	"log"

	"chessdesk/internal/api"
	"chessdesk/internal/logging"
	"chessdesk/internal/ui"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "game service URL")
	logPath := flag.String("log", "./chessdesk.log", "path to log file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	logging.Debug = *debug

	// The TUI owns the terminal, so logs go to a file.
	if err := logging.InitFile(*logPath, "CLIENT: "); err != nil {
		log.Fatalf("open log file: %v", err)
	}

	log.Printf("connecting to %s", *server)
	client := api.NewClient(*server)
	if err := ui.New(client).Run(); err != nil {
		log.Fatal(err)
	}
}
