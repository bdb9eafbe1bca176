package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/devtools"
	"mazeraid/pkg/game/feed"
	"mazeraid/pkg/game/i18n"
	"mazeraid/pkg/game/levels"
	"mazeraid/pkg/game/menu"
	"mazeraid/pkg/game/renderer"
	"mazeraid/pkg/game/renderer/ebiten"
	"mazeraid/pkg/game/renderer/tui"
	"mazeraid/pkg/game/session"
	"mazeraid/pkg/game/snapshot"
)

func main() {
	startLevel := flag.Int("level", 1, "starting level number (for developer testing)")
	levelsPath := flag.String("levels", "", "YAML level pack (default: built-in pack)")
	configPath := flag.String("config", "", "YAML rules file overriding the defaults")
	seed := flag.Int64("seed", 0, "random seed (0: time-based)")
	rendererName := flag.String("renderer", "tui", "display: tui or ebiten")
	feedAddr := flag.String("feed", "", "serve a spectator websocket feed on this address, e.g. :8080")
	endless := flag.Bool("endless", false, "generate levels past the end of the pack")
	lang := flag.String("lang", "en", "message language ("+fmt.Sprint(i18n.Languages())+")")
	logPath := flag.String("log", "", "write the log to this file")
	dump := flag.Bool("dump", false, "write the starting level to map.txt and exit")
	keys := flag.Bool("keys", false, "list the controls and exit")
	showMenu := flag.Bool("menu", true, "pick character, weapon and scale before playing")
	flag.Parse()

	if *keys {
		menu.WriteBindings(os.Stdout)
		return
	}

	if *startLevel < 1 {
		fmt.Fprintln(os.Stderr, "-level must be 1 or more")
		os.Exit(2)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	rules := config.Default()
	if *configPath != "" {
		var err error
		if rules, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	pack, err := loadPack(*levelsPath)
	if err != nil {
		log.Fatalf("levels: %v", err)
	}

	if err := i18n.SetLanguage(*lang); err != nil {
		log.Fatalf("language: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	s, err := session.New(session.Options{
		Rules:      rules,
		Pack:       pack,
		Endless:    *endless,
		Seed:       *seed,
		StartLevel: *startLevel - 1,
	}, time.Now())
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	if *dump {
		path, err := devtools.DumpMapToFile(s.Game())
		if err != nil {
			log.Fatalf("dump: %v", err)
		}
		fmt.Println(path)
		return
	}

	r, err := newRenderer(*rendererName)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	if err := r.Init(); err != nil {
		log.Fatalf("renderer init: %v", err)
	}
	if host, ok := r.(startMenuHost); ok && *showMenu {
		host.SetStartMenu(menu.NewStartMenu(renderer.DefaultAppearance()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *feedAddr != "" {
		hub := feed.NewHub()
		go func() {
			if err := hub.ListenAndServe(ctx, *feedAddr); err != nil {
				log.Printf("%v", err)
			}
		}()
		r.SetObserver(func(snap snapshot.Snapshot) {
			if err := hub.Broadcast(snap); err != nil {
				log.Printf("%v", err)
			}
		})
	}

	// The terminal display owns the screen, so without a log file its log
	// is discarded
	if *logPath == "" && *rendererName == "tui" {
		log.SetOutput(io.Discard)
	}

	if err := r.Run(ctx, s); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startMenuHost is a renderer that can show the start menu
type startMenuHost interface {
	SetStartMenu(m *menu.StartMenu)
}

func loadPack(path string) (*levels.Pack, error) {
	if path == "" {
		return levels.Default()
	}
	return levels.Load(path)
}

func newRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.NewTerminal(), nil
	case "ebiten":
		return ebiten.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want tui or ebiten)", name)
	}
}
