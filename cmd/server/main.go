package main

import (
	"flag"
	"log"
	"net/http"

	"chessdesk/internal/game"
	"chessdesk/internal/handlers"
	"chessdesk/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	logging.Debug = *debug

	hub := game.NewHub()
	h := handlers.NewHandler(hub)
	r := handlers.NewRouter(h)

	log.Printf("chessdesk service listening on %s …", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}
