package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/javiermolinar/pixsearch/internal/ui"
)

func main() {
	app := ui.NewApp()

	// fang adds styled help and errors, --version, completions and manpages.
	if err := fang.Execute(
		context.Background(),
		app.Root(),
		fang.WithVersion(ui.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
