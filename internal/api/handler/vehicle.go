package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
)

// parseVehicleFilters lê search, status, brand, page e per_page da query string.
// page e per_page ausentes ficam 0 e o serviço aplica os padrões.
func parseVehicleFilters(query url.Values) (domain.VehicleFilters, error) {
	filters := domain.VehicleFilters{
		Search: query.Get("search"),
		Status: query.Get("status"),
		Brand:  query.Get("brand"),
	}

	var err error
	if page := query.Get("page"); page != "" {
		if filters.Page, err = strconv.Atoi(page); err != nil {
			return filters, inventory.ErrInvalidPagination
		}
	}

	if perPage := query.Get("per_page"); perPage != "" {
		if filters.PerPage, err = strconv.Atoi(perPage); err != nil {
			return filters, inventory.ErrInvalidPagination
		}
	}

	return filters, nil
}

// writeInventoryError traduz os erros do estoque para a resposta da API
func writeInventoryError(w http.ResponseWriter, err error, message string) {
	var inventoryErr *inventory.InventoryError
	if errors.As(err, &inventoryErr) {
		logrus.WithError(err).WithField("vehicle_id", inventoryErr.VehicleID).Warn(message)

		var details any
		if inventoryErr.VehicleID != "" {
			details = map[string]string{"vehicle_id": inventoryErr.VehicleID}
		}
		apiErrors.WriteError(w, inventoryErr.Code, inventoryErr.Error(), details)
		return
	}

	logrus.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func ListVehicles(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseVehicleFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "page e per_page devem ser números inteiros", nil)
			return
		}

		page, err := service.ListVehicles(r.Context(), filters)
		if err != nil {
			writeInventoryError(w, err, "Erro ao listar veículos")
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

func ListVehicleBrands(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListBrands(r.Context()))
	}
}

func GetVehicle(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		vehicle, err := service.GetVehicle(r.Context(), id)
		if err != nil {
			writeInventoryError(w, err, "Erro ao buscar veículo")
			return
		}

		writeJSON(w, http.StatusOK, vehicle)
	}
}

func CreateVehicle(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVehicle")

		var req domain.CreateVehicleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Warn("Corpo inválido ao criar veículo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		vehicle, err := service.CreateVehicle(r.Context(), req)
		if err != nil {
			writeInventoryError(w, err, "Erro ao criar veículo")
			return
		}

		writeJSON(w, http.StatusCreated, vehicle)
	}
}

func UpdateVehicle(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logrus.WithField("vehicle_id", id).Info("INIT - UpdateVehicle")

		var req domain.UpdateVehicleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Warn("Corpo inválido ao atualizar veículo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		vehicle, err := service.UpdateVehicle(r.Context(), id, req)
		if err != nil {
			writeInventoryError(w, err, "Erro ao atualizar veículo")
			return
		}

		writeJSON(w, http.StatusOK, vehicle)
	}
}

func DeleteVehicle(service inventory.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logrus.WithField("vehicle_id", id).Info("INIT - DeleteVehicle")

		if err := service.DeleteVehicle(r.Context(), id); err != nil {
			writeInventoryError(w, err, "Erro ao remover veículo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
