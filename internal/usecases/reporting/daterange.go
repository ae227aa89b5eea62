package reporting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// ErrInvalidDateFormat indica que since/until não estão no formato
// DD-MM-YYYY (três componentes separados por "-").
var ErrInvalidDateFormat = errors.New("invalid date format, expected DD-MM-YYYY")

// datePresets mapeia a janela padrão para o preset relativo equivalente da
// API de insights. Usado apenas quando as duas pontas vieram do default.
var datePresets = map[int]string{
	30: "last_30d",
	90: "last_90d",
}

// ResolveDateRange calcula o intervalo do relatório a partir dos parâmetros
// opcionais do cliente (DD-MM-YYYY), do fuso da conta e da janela padrão.
//
// A conversão de uma data enviada é propositalmente ingênua: divide em "-",
// exige três componentes e reordena dia-mês-ano para ano-mês-dia, sem
// validar os valores. É o contrato observado pelo dashboard: só a contagem
// de componentes é rejeitada.
func ResolveDateRange(since, until string, tzOffsetHours float64, lookbackDays int, now time.Time) (*domain.DateRange, error) {
	accountNow := now.UTC().Add(time.Duration(tzOffsetHours * float64(time.Hour)))
	today := time.Date(accountNow.Year(), accountNow.Month(), accountNow.Day(), 0, 0, 0, 0, time.UTC)
	defaultStart := today.AddDate(0, 0, -lookbackDays)

	dr := &domain.DateRange{}

	if since != "" {
		start, err := convertDateFormat(since)
		if err != nil {
			return nil, fmt.Errorf("invalid since date: %w", err)
		}
		dr.Start = start
		dr.DisplayStart = since
	} else {
		dr.Start = defaultStart.Format(time.DateOnly)
		dr.DisplayStart = formatDateForResponse(dr.Start)
	}

	if until != "" {
		end, err := convertDateFormat(until)
		if err != nil {
			return nil, fmt.Errorf("invalid until date: %w", err)
		}
		dr.End = end
		dr.DisplayEnd = until
	} else {
		dr.End = today.Format(time.DateOnly)
		dr.DisplayEnd = formatDateForResponse(dr.End)
	}

	// Com as duas pontas no default a janela equivale exatamente a "hoje
	// menos a janela configurada", o que habilita o atalho de date_preset.
	dr.Recent = since == "" && until == ""

	return dr, nil
}

// InsightWindowFor traduz o intervalo resolvido no parâmetro enviado à API
// de insights: um preset relativo quando a janela padrão tem equivalente,
// senão um time_range explícito. Comportamentalmente idêntico, o preset só
// muda qual parâmetro de consulta é usado.
func InsightWindowFor(dr *domain.DateRange, lookbackDays int) *domain.InsightWindow {
	if dr.Recent {
		if preset, ok := datePresets[lookbackDays]; ok {
			return &domain.InsightWindow{DatePreset: preset}
		}
	}

	return &domain.InsightWindow{
		Since: dr.Start,
		Until: dr.End,
	}
}

// convertDateFormat reordena DD-MM-YYYY para YYYY-MM-DD.
func convertDateFormat(dateStr string) (string, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return "", ErrInvalidDateFormat
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}

// formatDateForResponse reordena YYYY-MM-DD para DD-MM-YYYY, para ecoar os
// defaults de volta ao cliente.
func formatDateForResponse(dateStr string) string {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return dateStr
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
