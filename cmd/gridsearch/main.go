// Command gridsearch runs one path search on a text grid and prints the
// result. Every step can be printed as a frame, paced by -delay, so the
// search can be watched in a terminal.
//
// Usage:
//
//	gridsearch -algo bfs -rows 20 -cols 20 -p 0.02 -seed 7 -frames
//
// The start defaults to (rows-3, cols-5) and the target to (rows-3, 2).
// Ctrl-C abandons the run at the next step boundary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/obstacles"
	"github.com/katalvlaran/gridsearch/search"
)

func main() {
	var (
		algoStr   string
		rows      int
		cols      int
		startStr  string
		targetStr string
		prob      float64
		depth     int
		seed      uint64
		delay     time.Duration
		frames    bool
	)

	flag.StringVar(&algoStr, "algo", "bfs", "Algorithm: bfs, dfs, ucs, dls, iddfs, bidi, or a digit 1-6")
	flag.IntVar(&rows, "rows", gridgraph.DefaultRows, "Grid rows")
	flag.IntVar(&cols, "cols", gridgraph.DefaultCols, "Grid columns")
	flag.StringVar(&startStr, "start", "", "Start cell as 'r,c' (default rows-3,cols-5)")
	flag.StringVar(&targetStr, "target", "", "Target cell as 'r,c' (default rows-3,2)")
	flag.Float64Var(&prob, "p", obstacles.DefaultProbability, "Per-step obstacle probability in [0,1]")
	flag.IntVar(&depth, "depth", search.DefaultDepthLimit, "Depth limit for dls")
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Obstacle RNG seed")
	flag.DurationVar(&delay, "delay", 50*time.Millisecond, "Pause between printed frames")
	flag.BoolVar(&frames, "frames", false, "Print the grid after every step")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gridsearch: ")

	alg, err := search.ParseAlgorithm(algoStr)
	if err != nil {
		log.Fatal(err)
	}
	start, err := cellFlag(startStr, search.Cell{Row: rows - 3, Col: cols - 5})
	if err != nil {
		log.Fatalf("-start: %v", err)
	}
	target, err := cellFlag(targetStr, search.Cell{Row: rows - 3, Col: 2})
	if err != nil {
		log.Fatalf("-target: %v", err)
	}

	sess, err := search.NewSession(rows, cols, start, target,
		search.WithObstacleProbability(prob),
		search.WithDepthLimit(depth),
		search.WithSeed(seed),
		search.WithOnObstacle(func(c search.Cell) {
			if frames {
				log.Printf("obstacle at %v", c)
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("p=%v seed=%d", prob, seed)
	s, err := sess.Start(alg)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(watch(sess, s, frames, delay))
}

// watch drains the run, printing frames when asked, and reports the outcome.
// It returns the process exit code.
func watch(sess *search.Session, s *search.Search, frames bool, delay time.Duration) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start, target := sess.Endpoints()
	g := sess.Grid()
	log.Printf("%v from %v to %v on %d×%d", s.Algorithm(), start, target, g.Rows(), g.Cols())
	for ev := range s.Steps() {
		if ctx.Err() != nil {
			break
		}
		if frames {
			fmt.Printf("step %d\n%v\n", s.StepCount(), ev.Grid)
			time.Sleep(delay)
		}
	}

	res := s.Result()
	fmt.Print(g)
	switch res.Outcome {
	case search.Found:
		log.Printf("found: %d moves, %d steps, %d obstacles", res.Edges(), res.Steps, res.Obstacles)
	case search.Exhausted:
		log.Printf("exhausted after %d steps, %d obstacles", res.Steps, res.Obstacles)
		if !g.Reachable(start, target) {
			log.Print("target is cut off by obstacles")
		} else if res.Algorithm == search.DLS {
			log.Printf("no route within depth %d", res.DepthLimit)
		}
		return 2
	case search.Pending:
		log.Printf("abandoned after %d steps", res.Steps)
		return 130
	}
	return 0
}

// cellFlag parses "r,c", returning def for an empty string.
func cellFlag(s string, def search.Cell) (search.Cell, error) {
	if s == "" {
		return def, nil
	}
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return search.Cell{}, errors.New("want r,c")
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return search.Cell{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return search.Cell{}, fmt.Errorf("col: %w", err)
	}
	return search.Cell{Row: r, Col: c}, nil
}
