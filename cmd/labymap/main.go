// Command labymap prints the map of a level, or of every level, with the legend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labymap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	level := flag.String("level", os.Getenv("LABYRINTH_LEVEL"), "level id (empty prints all levels)")
	legend := flag.Bool("legend", true, "print the glyph legend")
	flag.Parse()

	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var defs []*gamedata.LevelDef
	if *level != "" {
		def := registry.GetByID(*level)
		if def == nil {
			log.Fatalf("Unknown level %q", *level)
		}
		defs = append(defs, def)
	} else {
		for i := range registry.All() {
			defs = append(defs, &registry.All()[i])
		}
	}

	ctx := context.Background()
	for _, def := range defs {
		if err := printLevel(ctx, def); err != nil {
			// Report and continue with the next level
			fmt.Fprintf(os.Stderr, "%s: %v\n", def.ID, err)
		}
	}
	if *legend {
		fmt.Print(labymap.Legend())
	}
}

func printLevel(ctx context.Context, def *gamedata.LevelDef) error {
	l, err := def.Build(ctx)
	if err != nil {
		return err
	}
	m, err := labymap.New(l)
	if err != nil {
		return err
	}
	text, err := m.Display()
	if err != nil {
		return err
	}
	fmt.Printf("%s (%dx%d)\n%s\n", def.Name, l.Width(), l.Height(), text)
	return nil
}
