// backend/src/handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/services"
	"github.com/username/vendadash/backend/src/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: service}
}

func (h *DashboardHandler) HandleGetDashboardStats(w http.ResponseWriter, r *http.Request) {
	datasetID := r.URL.Query().Get("dataset")
	if datasetID == "" {
		utils.SendJSONError(w, "missing required 'dataset' query parameter", http.StatusBadRequest)
		return
	}

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.dashboardService.GetDashboardStats(datasetID, criteria)
	if err != nil {
		if errors.Is(err, services.ErrDatasetNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("dataset '%s' not found or expired", datasetID), http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving dashboard stats", "datasetID", datasetID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving dashboard stats: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(stats)
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				logger.L.Debug("ETag match for dashboard stats", "datasetID", datasetID, "etag", currentETag)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		logger.L.Warn("Proceeding without ETag check", "datasetID", datasetID, "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logger.L.Error("Error encoding JSON response for dashboard stats", "datasetID", datasetID, "error", err)
	}
}

func (h *DashboardHandler) HandleGetOperators(w http.ResponseWriter, r *http.Request) {
	datasetID := r.URL.Query().Get("dataset")
	if datasetID == "" {
		utils.SendJSONError(w, "missing required 'dataset' query parameter", http.StatusBadRequest)
		return
	}

	operators, err := h.dashboardService.GetOperators(datasetID)
	if err != nil {
		if errors.Is(err, services.ErrDatasetNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("dataset '%s' not found or expired", datasetID), http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving operators", "datasetID", datasetID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving operators: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(operators); err != nil {
		logger.L.Error("Error encoding JSON response for operators", "datasetID", datasetID, "error", err)
	}
}

// criteriaFromQuery builds FilterCriteria from the request. A missing
// operator means no restriction; date bounds must be canonical YYYY-MM-DD.
func criteriaFromQuery(r *http.Request) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Operator:  r.URL.Query().Get("operator"),
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
	}
	if criteria.Operator == "" {
		criteria.Operator = models.AllOperators
	}
	if criteria.StartDate != "" {
		if _, err := utils.ParseDay(criteria.StartDate); err != nil {
			return criteria, fmt.Errorf("invalid 'start' date '%s': expected YYYY-MM-DD", criteria.StartDate)
		}
	}
	if criteria.EndDate != "" {
		if _, err := utils.ParseDay(criteria.EndDate); err != nil {
			return criteria, fmt.Errorf("invalid 'end' date '%s': expected YYYY-MM-DD", criteria.EndDate)
		}
	}
	return criteria, nil
}
