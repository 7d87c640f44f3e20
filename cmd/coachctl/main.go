package main

import (
	_ "time/tzdata"

	"github.com/blaisecz/nutrition-coach/internal/cli"
)

func main() {
	cli.Execute()
}
