package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/superbros/assets"
	"github.com/automoto/superbros/config"
	"github.com/automoto/superbros/headless"
	"github.com/automoto/superbros/session"
)

func main() {
	tuning := flag.String("tuning", "", "TOML file overriding physics and timing values")
	tickRate := flag.Int("tickrate", 0, "Simulation steps per second (0 = use TPS)")
	frames := flag.Uint64("frames", 3600, "Stop after this many steps (0 = run until interrupted)")
	jumpEvery := flag.Uint64("jump-every", 45, "Autoplay jumps every N frames (0 = never)")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Loaded tuning from %s", *tuning)
	}
	if *tickRate <= 0 {
		*tickRate = config.C.TPS
	}

	levels, err := assets.LoadWorlds()
	if err != nil {
		log.Fatalf("Failed to load worlds: %v", err)
	}

	s, err := session.New(levels)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	loop := headless.NewGameLoop(s, headless.Autoplay{JumpEvery: *jumpEvery}, *tickRate)
	loop.MaxFrames = *frames
	loop.OnWorldChange = func(from, to session.State) {
		log.Printf("frame %d: %s -> %s, score %d", to.Frame, from.WorldName, to.WorldName, to.Score)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	final := loop.Run()
	log.Printf("Final: world %s, score %d, frames %d", final.WorldName, final.Score, loop.Frames())
}
