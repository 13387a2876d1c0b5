package main

import (
	"context"
	"log"

	"github.com/nsqlite/csqlite/internal/csqlite"
)

func main() {
	if err := csqlite.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
