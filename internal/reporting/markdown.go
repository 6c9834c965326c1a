package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Normalization Report\n\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Records | %d |\n", r.TotalRecords))
	sb.WriteString(fmt.Sprintf("| Normalized | %d |\n", r.Normalized))
	sb.WriteString(fmt.Sprintf("| Incompatible Units | %d |\n", r.IncompatibleUnits))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", r.Failed))
	sb.WriteString("\n")

	if len(r.BucketCounts) > 0 {
		sb.WriteString("## Buckets\n\n")
		sb.WriteString("| Bucket | Records |\n")
		sb.WriteString("|--------|---------|\n")
		for _, bc := range r.BucketCounts {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", bc.Bucket, bc.Count))
		}
		sb.WriteString("\n")
	}

	if len(r.Corrections) > 0 {
		sb.WriteString("## FX Rate Corrections\n\n")
		sb.WriteString("| Currency | Original | Corrected |\n")
		sb.WriteString("|----------|----------|-----------|\n")
		for _, c := range r.Corrections {
			sb.WriteString(fmt.Sprintf("| %s | %v | %v |\n", c.Currency, c.Original, c.Corrected))
		}
		sb.WriteString("\n")
	}

	if len(r.Errors) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("- `%s` [%s] %s\n", e.RecordID, e.Type, e.Message))
		}
		sb.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			if w.RecordID != "" {
				sb.WriteString(fmt.Sprintf("- `%s` %s\n", w.RecordID, w.Message))
			} else {
				sb.WriteString(fmt.Sprintf("- %s\n", w.Message))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
