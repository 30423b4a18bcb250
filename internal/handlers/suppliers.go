// suppliers.go
//
// A flat-file quality audit desk service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qadesk.
// qadesk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qadesk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qadesk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/models"
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/utils"
)

// SupplierHandler handles supplier evaluation log routes
type SupplierHandler struct {
	Log *store.SupplierLog
}

// ListSuppliers handles GET /api/suppliers?supplier=...
// @Summary List supplier evaluations
// @Tags Suppliers
// @Produce json
// @Param supplier query string false "Supplier name filter"
// @Success 200 {array} models.SupplierEvaluation
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *fiber.Ctx) error {
	rows, err := h.Log.List(c.Query("supplier"))
	if err != nil {
		return storeErrorResponse(c, err, "listSuppliers")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// AddSupplierEvaluation handles POST /api/suppliers
// @Summary Append supplier evaluation
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param body body models.SupplierEvaluation true "Supplier evaluation"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /suppliers [post]
func (h *SupplierHandler) AddSupplierEvaluation(c *fiber.Ctx) error {
	var record models.SupplierEvaluation
	if err := c.BodyParser(&record); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "supplier.validation.input")
	}

	if record.Supplier == "" || record.EvaluatedBy == "" {
		return utils.ErrorResponse(c, "Supplier and evaluator are required", fiber.StatusBadRequest, "supplier.validation.input")
	}
	if !models.ValidQuality(record.Quality) || !models.ValidDelivery(record.Delivery) || !models.ValidDocumentation(record.Documentation) {
		return utils.ErrorResponse(c, "Unrecognized evaluation grade", fiber.StatusBadRequest, "supplier.validation.grade")
	}

	if err := h.Log.Append([]models.SupplierEvaluation{record}); err != nil {
		return storeErrorResponse(c, err, "addSupplierEvaluation")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// ExportSuppliers handles GET /api/suppliers/export
// @Summary Download the supplier log as CSV
// @Tags Suppliers
// @Produce text/csv
// @Success 200 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /suppliers/export [get]
func (h *SupplierHandler) ExportSuppliers(c *fiber.Ctx) error {
	csvData, err := h.Log.ExportCSV()
	if err != nil {
		return storeErrorResponse(c, err, "exportSuppliers")
	}
	return sendCSV(c, csvData, "suppliers.csv")
}
