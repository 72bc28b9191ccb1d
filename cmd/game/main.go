package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/burger/internal/application/game"
	"github.com/younwookim/burger/internal/application/replay"
	"github.com/younwookim/burger/internal/application/scene/playing"
	"github.com/younwookim/burger/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "With -replay, simulate without a window and print the final state")
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded defaults")
	watch := flag.Bool("watch", false, "With -config, reload actor.yaml when it changes")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	actorSource, err := loader.ReadActor()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{
		RecordPath:  *recordFlag,
		ActorSource: string(actorSource),
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if err := useReplayConfig(cfg, *data); err != nil {
			log.Fatalf("Failed to load replay config: %v", err)
		}
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))

		if *headless {
			summary, err := runHeadless(cfg, *data)
			if err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			fmt.Println(summary)
			return
		}
		opts.Source = playing.NewReplaySource(*data)
	}

	if *watch {
		if *configDir == "" {
			log.Fatalf("-watch needs -config")
		}
		watcher, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configDir, err)
		}
		opts.Watcher = watcher
		opts.Loader = loader
		log.Printf("Watching %s for changes", *configDir)
	}

	p, err := playing.New(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.World.Display
	g := game.New(p, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Burger")
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game error: %v", err)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}
