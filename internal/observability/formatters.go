// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCVRecord outputs a human-readable summary of an extracted CV record.
func (p *Printer) PrintCVRecord(record *types.CVRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", record.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.PersonalInfo.Phone))
	if record.PersonalInfo.Address != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", record.PersonalInfo.Address))
	}
	sb.WriteString("\n")

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := record.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Degree))
			if entry.Institution != "" {
				sb.WriteString(fmt.Sprintf(" — %s", entry.Institution))
			}
			sb.WriteString("\n")
		}
		if len(record.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Education)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.WorkExperience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := record.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Position))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", entry.Company))
			}
			if entry.IsCurrent {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		if len(record.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Skills) > 0 {
		names := make([]string, 0, len(record.Skills))
		for _, skill := range record.Skills {
			names = append(names, skill.Name)
		}
		skills := strings.Join(names, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(record.Certifications)))

	p.printBox("EXTRACTED CV RECORD", strings.TrimSuffix(sb.String(), "\n"))
}
