package account

import "errors"

// Erros específicos para o contexto da conta de anúncios
var (
	// ErrMissingConfiguration indica que a credencial ou o ID da conta de
	// anúncios não foram configurados no processo.
	ErrMissingConfiguration = errors.New("missing access token or ad account configuration")
)
