package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/settlement-solver/internal/models"
	"github.com/napolitain/settlement-solver/internal/solver/settlement"
)

var (
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	cardTitle = lipgloss.NewStyle().Bold(true)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrediction(w io.Writer, p models.SettlementPrediction) {
	infoColor := color.New(color.FgYellow)
	warnColor := color.New(color.FgRed)

	printCard(w, p)
	fmt.Fprintln(w)

	printBreakdown(w, p)

	if len(p.Recommendations) > 0 {
		infoColor.Fprintln(w, "\nRecommendations:")
		for i, r := range p.Recommendations {
			fmt.Fprintf(w, "   %d. %s\n", i+1, r)
		}
	}

	if len(p.Warnings) > 0 {
		warnColor.Fprintln(w, "\nWarnings:")
		for _, msg := range p.Warnings {
			fmt.Fprintf(w, "   • %s\n", msg)
		}
	}

	if len(p.Defaulted) > 0 {
		fmt.Fprintf(w, "\nDefaulted fields: %s\n", strings.Join(p.Defaulted, ", "))
	}
}

// printCard renders the headline estimate in a bordered box, coloured by
// confidence.
func printCard(w io.Writer, p models.SettlementPrediction) {
	border := lipgloss.Color("2")
	switch {
	case p.Confidence < 0.1:
		border = lipgloss.Color("1")
	case p.Confidence < 0.7:
		border = lipgloss.Color("3")
	}

	lines := []string{
		cardTitle.Render("Second village"),
		"",
		fmt.Sprintf("Estimate:    %s", formatHours(p.EstimatedHours)),
		fmt.Sprintf("Date:        %s", p.EstimatedDate.Format("2006-01-02 15:04 MST")),
		fmt.Sprintf("Bottleneck:  %s", formatName(string(p.Bottleneck))),
		fmt.Sprintf("Confidence:  %.0f%%", p.Confidence*100),
	}
	if p.Breakdown.TrainingHours > 0 {
		lines = append(lines, fmt.Sprintf("Settlers:    %s (incl. %dh training)",
			formatHours(p.Breakdown.SettlersReadyHours), p.Breakdown.TrainingHours))
	}

	fmt.Fprintln(w, cardStyle.BorderForeground(border).Render(strings.Join(lines, "\n")))
}

func printBreakdown(w io.Writer, p models.SettlementPrediction) {
	b := p.Breakdown
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Condition", "Hour", "Reached", "State"}),
	)

	rows := []struct {
		name    string
		hour    int
		reached bool
		state   models.TrackState
	}{
		{"Culture points", b.CPHour, b.CPReached, p.Tracks.CulturePoints},
		{"Settler resources", b.ResourceHour, b.ResourcesReached, p.Tracks.Resources},
		{"Residence / Palace", b.BuildingHour, b.BuildingsReached, p.Tracks.Buildings},
	}
	for _, r := range rows {
		_ = table.Append([]string{r.name, strconv.Itoa(r.hour), reachedMark(r.reached), formatName(string(r.state))})
	}
	for _, t := range p.Tracks.Planned {
		_ = table.Append([]string{
			fmt.Sprintf("%s %d", formatName(string(t.BuildingType)), t.TargetLevel),
			"",
			fmt.Sprintf("level %d", t.FinalLevel),
			formatName(string(t.State)),
		})
	}
	_ = table.Render()

	if b.LimitingResource != "" {
		fmt.Fprintf(w, "Limiting resource: %s\n", b.LimitingResource)
	}
}

func printTimeline(w io.Writer, tl settlement.Timeline) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Hour", "Time", "Resources", "Production", "CP", "CP/day", "Constructing", "Events"}),
	)

	for _, e := range tl {
		constructing := make([]string, 0, len(e.Constructing))
		for _, bt := range e.Constructing {
			constructing = append(constructing, formatName(string(bt)))
		}
		_ = table.Append([]string{
			strconv.Itoa(e.Hour),
			e.Time.Format("01-02 15:04"),
			formatResources(e.Resources),
			formatResources(e.Production),
			strconv.Itoa(e.CulturePoints),
			strconv.Itoa(e.DailyCPRate),
			strings.Join(constructing, ", "),
			formatEvents(e.Events),
		})
	}
	_ = table.Render()
}

func printComparison(w io.Writer, results []settlement.StrategyResult, best string) {
	successColor := color.New(color.FgGreen, color.Bold)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"", "Strategy", "Estimate", "Bottleneck", "Confidence"}),
	)
	for _, r := range results {
		marker := ""
		if r.Strategy == best {
			marker = "✓"
		}
		_ = table.Append([]string{
			marker,
			r.Strategy,
			formatHours(r.Prediction.EstimatedHours),
			formatName(string(r.Prediction.Bottleneck)),
			fmt.Sprintf("%.2f", r.Prediction.Confidence),
		})
	}
	_ = table.Render()

	if best != "" {
		successColor.Fprintf(w, "\n✓ Best strategy: %s\n", best)
	}
}

func reachedMark(reached bool) string {
	if reached {
		return "yes"
	}
	return "no"
}

func formatHours(hours int) string {
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh (%dd %dh)", hours, hours/24, hours%24)
}

func formatResources(r models.Resources) string {
	return fmt.Sprintf("W:%6d C:%6d I:%6d Cr:%6d", r.Wood, r.Clay, r.Iron, r.Crop)
}

func formatEvents(events []settlement.Event) string {
	parts := make([]string, 0, len(events))
	for _, e := range events {
		switch e.Type {
		case settlement.EventOverflow:
			parts = append(parts, fmt.Sprintf("overflow %s -%d", e.Resource, e.Amount))
		case settlement.EventBuildingStarted:
			parts = append(parts, fmt.Sprintf("start %s %d", e.Building, e.Level))
		case settlement.EventBuildingCompleted:
			parts = append(parts, fmt.Sprintf("done %s %d", e.Building, e.Level))
		case settlement.EventDailyCPTick:
			parts = append(parts, fmt.Sprintf("+%d cp", e.Amount))
		case settlement.EventCelebration:
			parts = append(parts, fmt.Sprintf("celebration +%d cp", e.Amount))
		case settlement.EventBlocked:
			parts = append(parts, fmt.Sprintf("blocked %s %d", e.Building, e.Level))
		}
	}
	return strings.Join(parts, "; ")
}

func formatName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
