package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagMoves   string
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a scripted game without a terminal UI",
	Long: `Starts a game and applies one move per tick from --moves, then prints the
final state and the board. Letters U, D, L, R request a direction before the
tick; '.' ticks without input. The run stops early when the game ends.
With the same --seed the output is always the same.

Board legend: H head, o body, * food, . empty.

Examples:
  snake simulate --moves "RRRR" --seed 1
  snake simulate --moves "UUULLLDDD" --board-size 10 --seed 7 -v`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addRulesFlags(simulateCmd)
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves, one per tick: U, D, L, R or '.'")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the state after every tick")
}

// move is one scripted tick.
type move struct {
	dir     snake.Direction
	hasTurn bool
}

// parseMoves converts a move script. Whitespace is ignored.
func parseMoves(script string) ([]move, error) {
	var moves []move
	for i, r := range script {
		switch r {
		case ' ', '\t', '\n':
			continue
		case '.':
			moves = append(moves, move{})
		default:
			dir, err := snake.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", i+1, err)
			}
			moves = append(moves, move{dir: dir, hasTurn: true})
		}
	}
	return moves, nil
}

// simulate plays the moves on a fresh engine and writes the result to w.
func simulate(w io.Writer, engine *snake.Engine, moves []move, verbose bool) snake.GameState {
	state := engine.Start()
	for _, mv := range moves {
		if state.Status != snake.StatusPlaying {
			break
		}
		if mv.hasTurn {
			engine.RequestDirection(mv.dir)
		}
		state = engine.Tick()
		if verbose {
			fmt.Fprint(w, snake.DebugState(state, engine.Ticks()))
			fmt.Fprintln(w)
		}
	}

	fmt.Fprint(w, snake.DebugState(state, engine.Ticks()))
	fmt.Fprint(w, snake.Dump(state))
	return state
}

func runSimulate(cmd *cobra.Command, args []string) {
	moves, err := parseMoves(flagMoves)
	exitOnError(err)

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	exitOnError(err)
	defer closeLog()

	rules, _, err := resolveRules()
	exitOnError(err)

	engine, err := snake.NewEngine(rules, newRand(), snake.WithLogger(logger))
	exitOnError(err)

	simulate(os.Stdout, engine, moves, flagVerbose)
}
