package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"docsum/internal/worker"
)

func main() {
	_ = godotenv.Load()

	var addr string
	flag.StringVar(&addr, "addr", ":8899", "Listen address for this worker")
	flag.Parse()

	log.Printf("cluster worker listening on %s", addr)
	if err := worker.NewRouter().Run(addr); err != nil {
		log.Fatal(err)
	}
}
