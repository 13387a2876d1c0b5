package main

import (
	"context"
	"log"

	"github.com/nsqlite/csqlite/internal/csqlitebench"
)

func main() {
	if err := csqlitebench.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
