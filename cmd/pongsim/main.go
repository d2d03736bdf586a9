// Command pongsim plays CPU against CPU without a window and reports how
// long the rallies ran. It is a soak test for the collision pipeline.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/pong/assets"
	"github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	frames := flag.Int("frames", 60*60*10, "Simulation frames to run")
	seed := flag.Int64("seed", 1, "Serve direction seed")
	difficulty := flag.String("difficulty", "easy", "CPU difficulty: easy, normal or hard")
	tuning := flag.String("tuning", "", "YAML file overriding ball, bat and collision tuning")
	flag.Parse()

	d, err := config.ParseBotDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	config.Bot.Difficulty = d

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	court, err := assets.LoadCourt()
	if err != nil {
		log.Fatalf("Failed to load court: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCourt(e, court, factory.CourtOptions{LeftCPU: true, RightCPU: true, Seed: *seed})

	games, totalRallies, err := runSoak(e, *frames)
	if err != nil {
		log.Fatal(err)
	}

	sb := systems.CurrentScoreboard(e)
	fmt.Printf("frames: %d games: %d\n", *frames, games)
	fmt.Printf("left wins: %d right wins: %d\n", sb.LeftWins, sb.RightWins)
	fmt.Printf("longest rally: %d\n", sb.LongestRally)
	if games > 0 {
		fmt.Printf("mean rally: %.1f\n", float64(totalRallies)/float64(games))
	}
	if match, _ := systems.MatchSnapshot(e); match.State == config.MatchStateRunning {
		fmt.Printf("unfinished rally: %d\n", match.Rallies)
	}
}

// runSoak serves, steps the world for the given number of frames and serves
// again after every point. It returns the games finished and the bat hits
// made in them.
func runSoak(e *ecs.ECS, frames int) (games, rallies int, err error) {
	if err := systems.StartGame(e); err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}

	for i := 0; i < frames; i++ {
		systems.Step(e)

		match, _ := systems.MatchSnapshot(e)
		if match.State != config.MatchStateEnded {
			continue
		}
		games++
		rallies += match.Rallies
		if err := systems.StartGame(e); err != nil {
			return games, rallies, fmt.Errorf("restart after game %d: %w", games, err)
		}
	}
	return games, rallies, nil
}
