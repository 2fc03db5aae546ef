package main

import (
	"fmt"
	"log"

	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
)

// A scripted playthrough of the built-in world, printed as a transcript.
// Handy for eyeballing output formatting without an interactive terminal.
var script = []string{
	"look",
	"inventory",
	"north",
	"look sign",
	"take sign",
	"inv",
	"eat donut",
	"east",
	"list full",
	"buy pie",
	"sell pie",
	"look north",
	"exits",
	"south",
	"move south",
	"west",
	"drop sword",
	"look exits",
	"dance",
	"quit",
}

func main() {
	world, err := models.Default()
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	st := engine.NewState(world)

	fmt.Println(world.Title + "!")
	fmt.Println(st.DescribeLocation())

	for _, line := range script {
		fmt.Printf("\n> %s\n", line)
		out, quit := engine.Dispatch(st, line)
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			break
		}
	}
}
