// Command play is a CLI driver over the search engine: pick a game, pick
// an agent for each side, and either watch one game played move by move
// (a colored board for tic-tac-toe, colored piece counts for Hexxagon) or
// run a head-to-head arena over N games.
package main

/*

Examples:

  play -game tictactoe -p0 mcts -p1 random
  play -game hexxagon -p0 minimax -p1 mcts -games 20
  play -game hexxagon -p0 mcts -p1 random -dot tree.dot

Output is colored with termenv so piece colors show up in any
terminal that supports ANSI, falling back to plain text otherwise.

*/

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/muesli/termenv"

	agentrandom "github.com/kaelari/gamesearch/agents/random"
	"github.com/kaelari/gamesearch/games/hexxagon"
	"github.com/kaelari/gamesearch/games/tictactoe"
	"github.com/kaelari/gamesearch/pkg/mcts"
	"github.com/kaelari/gamesearch/pkg/minimax"
	"github.com/kaelari/gamesearch/pkg/rules"
)

var profile = termenv.ColorProfile()

func main() {
	game := flag.String("game", "tictactoe", "game to play: tictactoe or hexxagon")
	p0 := flag.String("p0", "mcts", "agent for player zero: mcts, minimax, or random")
	p1 := flag.String("p1", "random", "agent for player one: mcts, minimax, or random")
	games := flag.Int("games", 1, "number of games to play in the arena")
	verbose := flag.Bool("v", true, "print the position after every move (single-game mode only; ignored when -dot is set)")
	movetime := flag.Duration("movetime", 200*time.Millisecond, "MCTS thinking time per move")
	depth := flag.Int("depth", 4, "minimax search depth")
	dotPath := flag.String("dot", "", "if set, write the final MCTS search tree (player zero only) as GraphViz DOT to this path")
	flag.Parse()

	switch *game {
	case "tictactoe":
		runArena(tictactoeSetup(), *p0, *p1, *games, *verbose, *movetime, *depth, *dotPath)
	case "hexxagon":
		runArena(hexxagonSetup(), *p0, *p1, *games, *verbose, *movetime, *depth, *dotPath)
	default:
		fmt.Fprintf(os.Stderr, "unknown -game %q: want tictactoe or hexxagon\n", *game)
		os.Exit(1)
	}
}

// gameSetup bundles everything runArena needs for one game type, so the
// arena loop itself stays generic in spirit even though Go's lack of
// dynamic generics over a package-level choice means each game is wired
// through its own instantiation below.
type gameSetup struct {
	name     string
	play     func(p0, p1 string, movetime time.Duration, depth int) (result string, moves int, dot string, dotErr error)
	playGame func(p0, p1 string, movetime time.Duration, depth int, verbose bool) string
}

func tictactoeSetup() gameSetup {
	return gameSetup{
		name: "tictactoe",
		play: func(p0, p1 string, movetime time.Duration, depth int) (string, int, string, error) {
			return ttPlay(p0, p1, movetime, depth, false, "")
		},
		playGame: func(p0, p1 string, movetime time.Duration, depth int, verbose bool) string {
			result, _, _, _ := ttPlay(p0, p1, movetime, depth, verbose, "")
			return result
		},
	}
}

func hexxagonSetup() gameSetup {
	return gameSetup{
		name: "hexxagon",
		play: func(p0, p1 string, movetime time.Duration, depth int) (string, int, string, error) {
			return hxPlay(p0, p1, movetime, depth, false, "")
		},
		playGame: func(p0, p1 string, movetime time.Duration, depth int, verbose bool) string {
			result, _, _, _ := hxPlay(p0, p1, movetime, depth, verbose, "")
			return result
		},
	}
}

func runArena(setup gameSetup, p0Name, p1Name string, games int, verbose bool, movetime time.Duration, depth int, dotPath string) {
	fmt.Printf("%s: %s (zero) vs %s (one)\n", setup.name, p0Name, p1Name)

	var zeroWins, oneWins, ties int
	for i := 0; i < games; i++ {
		v := verbose && games == 1
		dot := ""
		var result string
		var err error
		if dotPath != "" && i == games-1 {
			result, _, dot, err = setup.play(p0Name, p1Name, movetime, depth)
			if err == nil && dot != "" {
				if werr := os.WriteFile(dotPath, []byte(dot), 0644); werr != nil {
					fmt.Fprintf(os.Stderr, "writing dot file: %v\n", werr)
				} else {
					fmt.Printf("wrote search tree to %s\n", dotPath)
				}
			}
		} else {
			result = setup.playGame(p0Name, p1Name, movetime, depth, v)
		}

		switch result {
		case "zero":
			zeroWins++
		case "one":
			oneWins++
		default:
			ties++
		}
		if games > 1 {
			fmt.Printf("game %d/%d: %s\n", i+1, games, result)
		}
	}

	fmt.Printf("\nresults over %d game(s): zero(%s)=%d one(%s)=%d ties=%d\n",
		games, p0Name, zeroWins, p1Name, oneWins, ties)
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func ttAgent(name string, movetime time.Duration, depth int) rules.Agent[tictactoe.State, tictactoe.Move] {
	switch name {
	case "mcts":
		return mcts.New[tictactoe.State, tictactoe.Move](tictactoe.Rules{}, mcts.Time(movetime), newRNG())
	case "minimax":
		return minimax.New[tictactoe.State, tictactoe.Move](tictactoe.Rules{}, depth, tictactoe.Evaluator{})
	case "random":
		return agentrandom.New[tictactoe.State, tictactoe.Move](newRNG())
	default:
		panic(fmt.Sprintf("unknown agent %q", name))
	}
}

func hxAgent(name string, movetime time.Duration, depth int) rules.Agent[hexxagon.State, hexxagon.Move] {
	switch name {
	case "mcts":
		return mcts.New[hexxagon.State, hexxagon.Move](hexxagon.Rules{}, mcts.Time(movetime), newRNG())
	case "minimax":
		return minimax.New[hexxagon.State, hexxagon.Move](hexxagon.Rules{}, depth, hexxagon.Evaluator{})
	case "random":
		return agentrandom.New[hexxagon.State, hexxagon.Move](newRNG())
	default:
		panic(fmt.Sprintf("unknown agent %q", name))
	}
}

func ttPlay(p0Name, p1Name string, movetime time.Duration, depth int, verbose bool, _ string) (result string, moves int, dot string, err error) {
	zero := ttAgent(p0Name, movetime, depth)
	one := ttAgent(p1Name, movetime, depth)
	r := tictactoe.Rules{}
	state := tictactoe.InitialState()

	var mctsAgent *mcts.Agent[tictactoe.State, tictactoe.Move]
	if a, ok := zero.(*mcts.Agent[tictactoe.State, tictactoe.Move]); ok {
		mctsAgent = a
	}

	for !state.IsTerminal() {
		var action tictactoe.Move
		if state.NextPlayer() == rules.PlayerZero {
			action = zero.DetermineNextMove(state)
		} else {
			action = one.DetermineNextMove(state)
		}
		state = r.Play(state, action)
		moves++
		if verbose {
			renderTTT(state)
		}
	}

	if mctsAgent != nil && mctsAgent.Tree() != nil {
		dot, err = mcts.ExportDOT(mctsAgent.Tree())
	}
	return outcome(state.Reward()), moves, dot, err
}

func hxPlay(p0Name, p1Name string, movetime time.Duration, depth int, verbose bool, _ string) (result string, moves int, dot string, err error) {
	zero := hxAgent(p0Name, movetime, depth)
	one := hxAgent(p1Name, movetime, depth)
	r := hexxagon.Rules{}
	state := hexxagon.InitialState()

	var mctsAgent *mcts.Agent[hexxagon.State, hexxagon.Move]
	if a, ok := zero.(*mcts.Agent[hexxagon.State, hexxagon.Move]); ok {
		mctsAgent = a
	}

	for !state.IsTerminal() {
		var action hexxagon.Move
		if state.NextPlayer() == rules.PlayerZero {
			action = zero.DetermineNextMove(state)
		} else {
			action = one.DetermineNextMove(state)
		}
		state = r.Play(state, action)
		moves++
		if verbose {
			renderHexxagon(state)
		}
	}

	if mctsAgent != nil && mctsAgent.Tree() != nil {
		dot, err = mcts.ExportDOT(mctsAgent.Tree())
	}
	return outcome(state.Reward()), moves, dot, err
}

func outcome(reward rules.Reward) string {
	switch {
	case reward.R0 > reward.R1:
		return "zero"
	case reward.R1 > reward.R0:
		return "one"
	default:
		return "tie"
	}
}

func renderTTT(s tictactoe.State) {
	xStyle := termenv.String("X").Foreground(profile.Color("2")).Bold()
	oStyle := termenv.String("O").Foreground(profile.Color("1")).Bold()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			switch s.At(r, c) {
			case tictactoe.X:
				fmt.Print(xStyle)
			case tictactoe.O:
				fmt.Print(oStyle)
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func renderHexxagon(s hexxagon.State) {
	rubies, pearls := s.Scores()
	fmt.Printf("%s=%d  %s=%d  (%v to move)\n",
		termenv.String("rubies").Foreground(profile.Color("2")).Bold(), rubies,
		termenv.String("pearls").Foreground(profile.Color("1")).Bold(), pearls,
		s.NextPlayer())
	fmt.Println()
}
