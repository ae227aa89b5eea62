package domain

// AccountContext é o contexto imutável da conta de anúncios usado em cada
// requisição: credencial repassada à API, ID já normalizado com o prefixo
// "act_" e o fuso da conta para resolver o "hoje" local.
type AccountContext struct {
	AccessToken         string
	AccountID           string
	TimezoneID          int
	TimezoneName        string
	TimezoneOffsetHours float64
}
