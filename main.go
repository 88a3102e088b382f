package main

import (
	"log"

	"github.com/mfrye/memlite/db"
	"github.com/mfrye/memlite/repl"
)

func main() {
	r, err := repl.New(db.New())
	if err != nil {
		log.Fatal(err)
	}
	r.Run()
}
