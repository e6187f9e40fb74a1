// Package render formats analysis reports for terminals and machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rcanalyzer/internal/domain"
)

// Styles controls how report sections are decorated.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Word    lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles are used on color terminals.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle().Bold(true),
		Word:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Plain leaves every section undecorated.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Heading: s, Label: s, Word: s, Muted: s, Warning: s}
}

// Text writes rep as a labelled report.
func Text(w io.Writer, rep *domain.Report, st Styles) error {
	_, err := io.WriteString(w, Format(rep, st))
	return err
}

// Format returns rep as a labelled report.
func Format(rep *domain.Report, st Styles) string {
	if rep == nil || rep.Result == nil {
		return ""
	}
	r := rep.Result
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s %v\n", st.Label.Render(label+":"), value)
	}

	b.WriteString(st.Title.Render("Analysis Result") + "\n")
	line("Total Words", r.TotalWords)
	line("Lexical Density", fmt.Sprintf("%.3f", r.LexicalDensity))
	line("Flesch Reading Ease", fmt.Sprintf("%.2f", r.FleschReadingEase))
	line("Flesch-Kincaid Grade", r.FleschKincaidGrade)
	line("Difficulty Level", r.Difficulty)

	b.WriteString("\n" + st.Heading.Render("Hard Words & Meaning") + "\n")
	if len(r.HardWords) == 0 {
		b.WriteString(st.Muted.Render("No hard words found.") + "\n")
	}
	for _, hw := range r.HardWords {
		fmt.Fprintf(&b, "- %s %s %s\n", st.Word.Render(hw.Word), st.Muted.Render(fmt.Sprintf("(%d)", hw.Frequency)), hw.Gloss)
	}

	b.WriteString("\n")
	line("Tone", r.Tone)
	line("Central Idea", r.CentralIdea)
	line("Structure", r.Structure)

	switch {
	case rep.AIError != "":
		b.WriteString("\n" + st.Heading.Render("AI Analysis") + "\n")
		b.WriteString(st.Warning.Render("AI analysis unavailable: "+rep.AIError) + "\n")
	case rep.AI != "":
		b.WriteString("\n" + st.Heading.Render("AI Analysis") + "\n")
		b.WriteString(strings.TrimRight(rep.AI, "\n") + "\n")
	}
	return b.String()
}

// JSON writes rep as indented JSON.
func JSON(w io.Writer, rep *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
