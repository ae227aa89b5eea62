package metadomain

// AdAccount traz os campos de fuso horário da conta, usados para resolver o
// "hoje" local nos defaults do intervalo de datas.
type AdAccount struct {
	ID                     string  `json:"id"`
	TimezoneID             int     `json:"timezone_id"`
	TimezoneName           string  `json:"timezone_name"`
	TimezoneOffsetHoursUTC float64 `json:"timezone_offset_hours_utc"`
}
