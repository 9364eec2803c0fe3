package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fuzzydb/internal/server"
)

var version = "dev"

func main() {
	var (
		host        string
		port        int
		showVersion bool
	)

	flag.StringVar(&host, "host", "0.0.0.0", "address to listen on")
	flag.IntVar(&port, "port", 7890, "port to listen on")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("fuzzydbd %s\n", version)
		os.Exit(0)
	}

	log.SetOutput(os.Stderr)

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, shutting down gracefully...", sig)
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}

	log.Println("fuzzydbd stopped")
}
