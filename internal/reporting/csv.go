package reporting

import (
	"fmt"
	"strings"

	"indicator-engine/internal/domain"
)

// RenderCorrectionsCSV renders the rate-correction audit trail as CSV.
func RenderCorrectionsCSV(corrections []domain.RateCorrection) string {
	var sb strings.Builder

	sb.WriteString("currency,original,corrected\n")
	for _, c := range corrections {
		sb.WriteString(fmt.Sprintf("%s,%v,%v\n", c.Currency, c.Original, c.Corrected))
	}
	return sb.String()
}

// RenderDataCSV renders normalized records as CSV.
func RenderDataCSV(records []domain.NormalizedRecord) string {
	var sb strings.Builder

	sb.WriteString("id,name,bucket,value,unit,normalized_value,normalized_unit,fx_rate\n")
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%v,%s,%v,%s,%v\n",
			csvEscape(r.ID),
			csvEscape(r.Name),
			r.Bucket,
			r.Value,
			csvEscape(r.Unit),
			r.NormalizedValue,
			csvEscape(r.NormalizedUnit),
			r.Explain.FXRate,
		))
	}
	return sb.String()
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
