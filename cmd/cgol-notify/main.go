package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/WaterKat/CGOL-Widget/internal/notify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "127.0.0.1:8765", "notify address of the running widget")
	source := flag.String("source", "cli", "event source label shown in widget logs")
	stencil := flag.String("pattern", "", "stencil to stamp instead of reseeding rows")
	rows := flag.Int("rows", 0, "bottom rows to reseed, 0 uses the widget's configured count")
	clear := flag.Bool("clear", false, "wipe the board instead of seeding")
	state := flag.Bool("state", false, "print the board state and exit")
	flag.Parse()

	client, err := notify.Dial(*addr)
	if err != nil {
		return err
	}
	defer client.Close()

	switch {
	case *state:
		res, err := client.State()
		if err != nil {
			return err
		}
		fmt.Printf("board %dx%d  generation %d  alive %d\n",
			res.Width, res.Height, res.Generation, res.Alive)
	case *clear:
		res, err := client.Clear(*source)
		if err != nil {
			return err
		}
		if !res.Accepted {
			return fmt.Errorf("clear dropped, widget queue is full")
		}
	default:
		res, err := client.Notify(*source, *stencil, *rows)
		if err != nil {
			return err
		}
		if !res.Accepted {
			return fmt.Errorf("notify dropped, widget queue is full")
		}
		fmt.Printf("queued  generation %d  alive %d\n", res.Generation, res.Alive)
	}
	return nil
}
