package main

import (
	"github.com/mkalan/bankist/cmd"
	"github.com/mkalan/bankist/internal/store"
)

func main() {
	cmd.Execute(store.Migrations)
}
