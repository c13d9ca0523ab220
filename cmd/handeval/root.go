package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/olehougaard/equity/domain/card"
	"github.com/olehougaard/equity/domain/deck"
	"github.com/olehougaard/equity/domain/evaluator"
)

const (
	minCards  = 2
	maxCards  = 7
	boardSize = 5
	holeSize  = 2
)

var errHandSize = errors.New("a hand holds 2 to 7 cards")

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "handeval",
		Short:         "Rank poker hands of two to seven cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				pterm.DefaultLogger.Level = pterm.LogLevelDebug
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(newEvalCmd(logger), newCompareCmd(logger), newDealCmd(logger))
	return root
}

func newEvalCmd(logger *slog.Logger) *cobra.Command {
	var withReference bool
	cmd := &cobra.Command{
		Use:   "eval <card>...",
		Short: "Evaluate one hand, e.g. eval Ac Js Ts 2h 9s 8s 7s",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			v := evaluator.Evaluate(h)
			logger.Debug("evaluated", "hand", h.String(), "value", fmt.Sprintf("%#x", uint64(v)))
			var reference string
			if withReference {
				reference, err = describeReference(h)
				if err != nil {
					return err
				}
			}
			return renderEval(h, v, reference)
		},
	}
	cmd.Flags().BoolVar(&withReference, "reference", false, "also describe a seven-card hand with the reference evaluator")
	return cmd
}

func newCompareCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <hand> <hand>...",
		Short: `Compare hands, e.g. compare "Ac Ad Kh Qs 9c" "Kc Kd Ah Qs 9c"`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hands := make([]card.Hand, len(args))
			for i, arg := range args {
				h, err := parseHand(arg)
				if err != nil {
					return fmt.Errorf("hand %d: %w", i+1, err)
				}
				hands[i] = h
			}
			standings := rankHands(hands)
			logger.Debug("compared hands", "count", len(hands), "winners", len(winners(standings)))
			return renderStandings(standings, 0)
		},
	}
}

func newDealCmd(logger *slog.Logger) *cobra.Command {
	var (
		players int
		seed    string
	)
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a random hold'em showdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, hands, err := dealShowdown(players, seed)
			if err != nil {
				return err
			}
			logger.Debug("dealt", "players", players, "board", board.String())
			return renderStandings(rankHands(hands), board)
		},
	}
	cmd.Flags().IntVarP(&players, "players", "p", 2, "number of players")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for a reproducible deal")
	return cmd
}

// parseHand accepts cards separated by spaces or commas.
func parseHand(s string) (card.Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) < minCards || len(fields) > maxCards {
		return 0, fmt.Errorf("%w, got %d", errHandSize, len(fields))
	}
	return card.ParseHand(fields...)
}

// dealShowdown deals a board plus hole cards for every player. Each returned
// hand already includes the board.
func dealShowdown(players int, seed string) (card.Hand, []card.Hand, error) {
	if players < 1 || boardSize+holeSize*players > deck.Size {
		return 0, nil, fmt.Errorf("cannot deal to %d players", players)
	}
	d := deck.New()
	if seed != "" {
		d = deck.NewSeeded([]byte(seed))
	}
	d.Shuffle()
	hands := make([]card.Hand, players)
	for i := range hands {
		hole, err := d.DrawHand(holeSize)
		if err != nil {
			return 0, nil, err
		}
		hands[i] = hole
	}
	board, err := d.DrawHand(boardSize)
	if err != nil {
		return 0, nil, err
	}
	for i := range hands {
		hands[i] |= board
	}
	return board, hands, nil
}

// standing is one hand's result in a comparison. Place 1 is the winner;
// tied hands share a place.
type standing struct {
	Index int
	Hand  card.Hand
	Value evaluator.Value
	Place int
}

func rankHands(hands []card.Hand) []standing {
	standings := make([]standing, len(hands))
	for i, h := range hands {
		standings[i] = standing{Index: i, Hand: h, Value: evaluator.Evaluate(h)}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Value > standings[j].Value
	})
	for i := range standings {
		switch {
		case i == 0:
			standings[i].Place = 1
		case standings[i].Value == standings[i-1].Value:
			standings[i].Place = standings[i-1].Place
		default:
			standings[i].Place = i + 1
		}
	}
	return standings
}

func winners(standings []standing) []standing {
	n := 0
	for n < len(standings) && standings[n].Place == 1 {
		n++
	}
	return standings[:n]
}
