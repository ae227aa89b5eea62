package domain

// DateRange é o intervalo resolvido de um relatório. Start/End ficam em
// YYYY-MM-DD (formato aceito pela API do Meta) e DisplayStart/DisplayEnd em
// DD-MM-YYYY, ecoados de volta para o dashboard.
type DateRange struct {
	Start        string
	End          string
	DisplayStart string
	DisplayEnd   string

	// Recent indica que as duas pontas vieram do default (hoje menos a
	// janela configurada), o que habilita o atalho de date_preset na API.
	Recent bool
}

// InsightWindow descreve como a janela é enviada à API de insights: um
// preset relativo quando disponível, senão um time_range explícito.
type InsightWindow struct {
	Since      string
	Until      string
	DatePreset string
}
