package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/olehougaard/equity/domain/card"
	"github.com/olehougaard/equity/domain/evaluator"
)

func coloredHand(h card.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func rankName(r card.Rank) string {
	if r == 0 {
		return "-"
	}
	return r.Name()
}

func renderEval(h card.Hand, v evaluator.Value, reference string) error {
	data := pterm.TableData{
		{"Hand", coloredHand(h)},
		{"Category", pterm.LightCyan(v.Category().String())},
		{"Description", v.String()},
		{"Most significant pair", rankName(v.MSP())},
		{"Least significant pair", rankName(v.LSP())},
		{"Kickers", fmt.Sprintf("%013b", v.Kickers()>>card.DeuceIndex)},
		{"Value", fmt.Sprintf("%#x", uint64(v))},
	}
	if reference != "" {
		data = append(data, []string{"Reference", reference})
	}
	return pterm.DefaultTable.WithData(data).Render()
}

func renderStandings(standings []standing, board card.Hand) error {
	if board != 0 {
		pterm.Info.Printfln("Board: %s", coloredHand(board))
	}
	data := pterm.TableData{{"Place", "Hand", "Holding", "Value"}}
	for _, s := range standings {
		holding := s.Hand &^ board
		place := fmt.Sprint(s.Place)
		if s.Place == 1 {
			place = pterm.LightGreen(place)
		}
		data = append(data, []string{place, fmt.Sprintf("#%d %s", s.Index+1, coloredHand(holding)), s.Value.String(), fmt.Sprintf("%#x", uint64(s.Value))})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	w := winners(standings)
	if len(w) == 1 {
		pterm.Success.Printfln("Hand #%d wins with %s", w[0].Index+1, w[0].Value)
		return nil
	}
	ids := make([]string, len(w))
	for i, s := range w {
		ids[i] = fmt.Sprintf("#%d", s.Index+1)
	}
	pterm.Success.Printfln("Tie between hands %s with %s", strings.Join(ids, ", "), w[0].Value)
	return nil
}
