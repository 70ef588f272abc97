package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cansyan/boxes/config"
	"github.com/cansyan/boxes/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (default "+config.ConfigPath()+")")
		layoutPath = flag.String("layout", "", "container tree file")
		stylePath  = flag.String("style", "", "style sheet file")
		dumpLayout = flag.Bool("dump", false, "print the layout to stdout instead of opening the terminal")
		size       = flag.String("size", "80x24", "grid size used by -dump, as WxH")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *layoutPath != "" {
		cfg.Layout = *layoutPath
	}
	if *stylePath != "" {
		cfg.Stylesheet = *stylePath
	}

	root, rules, err := loadDocument(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpLayout {
		w, h, err := parseSize(*size)
		if err != nil {
			log.Fatal(err)
		}
		buf := ui.NewBuffer(w, h)
		s := ui.NewSession(cfg.Title, root, buf)
		s.AddRules(rules...)
		s.Render()
		s.Display()
		if err := dump(os.Stdout, s, buf.Grid()); err != nil {
			log.Fatal(err)
		}
		return
	}

	quit, err := parseKey(cfg.QuitKey)
	if err != nil {
		log.Fatal(err)
	}

	// the terminal is taken over from here on
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	out := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)

	term, err := ui.NewTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s := ui.NewSession(cfg.Title, root, term)
	s.AddRules(rules...)

	app := newApp(s, term.Listener, quit)
	app.resync = term.Sync
	if err := app.Run(context.Background()); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q", s)
	}
	return w, h, nil
}
