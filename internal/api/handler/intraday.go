package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dashmeta/intraday-metrics-api/internal/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/insighting"
	"github.com/dashmeta/intraday-metrics-api/pkg/apiErrors"
	"github.com/dashmeta/intraday-metrics-api/pkg/log"
)

// GetIntradayByLevel retorna as métricas acumuladas do dia e a janela dos
// últimos ~30 minutos para todas as entidades do nível informado
func GetIntradayByLevel(service insighting.IntradayInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawLevel := httprouter.ParamsFromContext(r.Context()).ByName("level")

		level, err := domain.ParseLevel(rawLevel)
		if err != nil {
			logger.WithFields(log.Fields{
				"level": rawLevel,
				"error": err.Error(),
			}).Warn("intraday: invalid level parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidLevel, err.Error(), nil)
			return
		}

		logger.WithField("level", string(level)).Info("intraday: fetching intraday metrics")

		records, err := service.GetIntradayByLevel(level)
		if err != nil {
			logger.WithFields(log.Fields{
				"level": string(level),
				"error": err.Error(),
			}).Error("intraday: failed to compute intraday metrics")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas intraday", nil)
			return
		}

		logger.WithFields(log.Fields{
			"level":   string(level),
			"records": len(records),
		}).Info("intraday: intraday metrics computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithFields(log.Fields{
				"level": string(level),
				"error": err.Error(),
			}).Error("intraday: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
