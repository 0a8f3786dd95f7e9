package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting"
	"github.com/dashmeta/intraday-metrics-api/pkg/apiErrors"
	"github.com/dashmeta/intraday-metrics-api/pkg/log"
)

// Collect dispara um ciclo de coleta síncrono: busca os três níveis no Meta,
// monta o snapshot e grava no banco antes de responder
func Collect(service snapshotting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("collect: starting snapshot collection")

		summary, err := service.Collect()
		if err != nil {
			logger.WithField("error", err.Error()).Error("collect: snapshot collection failed")

			if errors.Is(err, snapshotting.ErrPersistence) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar snapshot no banco de dados", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao coletar métricas da API do Meta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": summary.SnapshotID,
			"campaigns":   summary.Counts.Campaigns,
			"adsets":      summary.Counts.Adsets,
			"ads":         summary.Counts.Ads,
		}).Info("collect: snapshot collection finished")

		response := map[string]any{
			"status":    "success",
			"doc_id":    summary.SnapshotID,
			"campaigns": summary.Counts.Campaigns,
			"adsets":    summary.Counts.Adsets,
			"ads":       summary.Counts.Ads,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("collect: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
