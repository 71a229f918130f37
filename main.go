package main

import (
	"embed"

	"github.com/goldtrust/gtw/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
