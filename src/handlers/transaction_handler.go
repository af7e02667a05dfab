// backend/src/handlers/transaction_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/processors"
	"github.com/username/vendadash/backend/src/services"
	"github.com/username/vendadash/backend/src/utils"
)

type TransactionHandler struct {
	dashboardService services.DashboardService
}

func NewTransactionHandler(service services.DashboardService) *TransactionHandler {
	return &TransactionHandler{dashboardService: service}
}

// HandleGetTransactions serves the filtered record set for tabular display,
// with optional free-text search ('q') and field sort ('sort', 'dir').
func (h *TransactionHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
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

	transactions, err := h.dashboardService.GetTransactions(datasetID, criteria)
	if err != nil {
		if errors.Is(err, services.ErrDatasetNotFound) {
			utils.SendJSONError(w, fmt.Sprintf("dataset '%s' not found or expired", datasetID), http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving transactions", "datasetID", datasetID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving transactions: %v", err), http.StatusInternalServerError)
		return
	}

	transactions = processors.SearchTransactions(transactions, r.URL.Query().Get("q"))

	direction := processors.SortAsc
	if r.URL.Query().Get("dir") == string(processors.SortDesc) {
		direction = processors.SortDesc
	}
	transactions = processors.SortTransactions(transactions, processors.ParseSortField(r.URL.Query().Get("sort")), direction)

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		logger.L.Error("Error encoding JSON response for transactions", "datasetID", datasetID, "error", err)
	}
}
