package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCampaignReport responde o relatório de campanhas do dashboard. As
// falhas por campanha já chegam contidas na resposta do serviço; aqui só os
// erros fatais viram status de erro.
func GetCampaignReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		since := r.URL.Query().Get("since")
		until := r.URL.Query().Get("until")

		logger.WithFields(log.Fields{
			"since": since,
			"until": until,
		}).Info("report: fetching campaign report")

		report, err := service.GetCampaignReport(r.Context(), since, until)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrInvalidDateFormat):
				logger.WithFields(log.Fields{
					"since": since,
					"until": until,
					"error": err.Error(),
				}).Warn("report: invalid date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, err.Error())
			case errors.Is(err, account.ErrMissingConfiguration):
				logger.WithError(err).Error("report: missing account configuration")

				apiErrors.WriteError(w, apiErrors.ErrMissingConfiguration, err.Error())
			default:
				logger.WithFields(log.Fields{
					"since": since,
					"until": until,
					"error": err.Error(),
				}).Error("report: failed to build campaign report")

				apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, err.Error())
			}
			return
		}

		logger.WithField("campaigns", len(report.Data.Campaigns)).Info("report: campaign report retrieved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
