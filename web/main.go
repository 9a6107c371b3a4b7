package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alexmoore/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raytracer-web",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	srv := server.NewServer(*port, logger)
	logger.Info("visit the web UI to start rendering", "url", fmt.Sprintf("http://localhost:%d", *port))

	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
