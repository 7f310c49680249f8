package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gulbrand/rusty-the-snake/pkg/config"
	"github.com/gulbrand/rusty-the-snake/pkg/server"
)

func main() {
	addr := flag.String("addr", config.ServerAddr, "listen address")
	width := flag.Int("width", config.StandardWidth, "board width in cells")
	height := flag.Int("height", config.StandardHeight, "board height in cells")
	static := flag.String("static", "", "directory of static files served at /")
	flag.Parse()

	rules := config.DefaultRules()
	if err := rules.Validate(); err != nil {
		log.Fatal(err)
	}

	srv := server.New(server.Config{
		Width:     *width,
		Height:    *height,
		Rules:     rules,
		StaticDir: *static,
	}, nil)

	fmt.Printf("🚀 Snake Game Web Server starting on http://localhost%s\n", *addr)
	fmt.Printf("🔌 WebSocket endpoint: ws://localhost%s/ws\n", *addr)

	log.Fatal(http.ListenAndServe(*addr, srv))
}
