package main

import (
	"fmt"
	"os"

	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
	"github.com/tatianab/text-adventure/internal/tui"
)

func main() {
	world, err := models.Default()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(engine.NewState(world)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(engine.Farewell)
}
