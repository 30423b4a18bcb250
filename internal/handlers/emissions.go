// emissions.go
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
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/parse"
	"github.com/localnerve/qadesk/internal/report"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/types"
	"github.com/localnerve/qadesk/internal/utils"
)

// EmissionHandler handles emission calculator routes
type EmissionHandler struct{}

// emissionResult is the calculation output envelope.
type emissionResult struct {
	Contributions []services.EmissionContribution `json:"contributions"`
	TotalKg       float64                         `json:"total_kg"`
}

// ListFactors handles GET /api/emissions/factors
// @Summary Get the emission factor table
// @Tags Emissions
// @Produce json
// @Success 200 {object} map[string]float64
// @Router /emissions/factors [get]
func (h *EmissionHandler) ListFactors(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.EmissionFactors())
}

// Calculate handles POST /api/emissions/calculate
// @Summary Calculate emissions
// @Description Map input quantities to CO2-equivalent contributions and their total
// @Tags Emissions
// @Accept json
// @Produce json
// @Param body body object true "Category quantities"
// @Success 200 {object} handlers.emissionResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /emissions/calculate [post]
func (h *EmissionHandler) Calculate(c *fiber.Ctx) error {
	var body struct {
		Quantities map[string]types.FlexFloat64 `json:"quantities"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Quantities) == 0 {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "emission.validation.input")
	}

	quantities := make(map[string]float64, len(body.Quantities))
	for category, quantity := range body.Quantities {
		quantities[category] = quantity.Float64()
	}

	contributions, total, err := services.CalculateEmissions(quantities)
	if err != nil {
		return storeErrorResponse(c, err, "calculateEmissions")
	}
	return c.Status(fiber.StatusOK).JSON(emissionResult{Contributions: contributions, TotalKg: total})
}

// Upload handles POST /api/emissions/upload
// @Summary Calculate emissions from a spreadsheet
// @Description Read bulk quantities from the first data row of an uploaded workbook
// @Tags Emissions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX workbook"
// @Success 200 {object} handlers.emissionResult
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /emissions/upload [post]
func (h *EmissionHandler) Upload(c *fiber.Ctx) error {
	data, _, err := uploadedFile(c)
	if err != nil {
		return storeErrorResponse(c, err, "uploadEmissions")
	}

	quantities, err := parse.ParseEmissionWorkbook(bytes.NewReader(data))
	if err != nil {
		return storeErrorResponse(c, err, "uploadEmissions")
	}

	contributions, total, err := services.CalculateEmissions(quantities)
	if err != nil {
		return storeErrorResponse(c, err, "uploadEmissions")
	}
	return c.Status(fiber.StatusOK).JSON(emissionResult{Contributions: contributions, TotalKg: total})
}

// Report handles POST /api/emissions/report
// @Summary Render an emission report PDF
// @Tags Emissions
// @Accept json
// @Produce application/pdf
// @Param body body object true "Category quantities"
// @Success 200 {string} string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /emissions/report [post]
func (h *EmissionHandler) Report(c *fiber.Ctx) error {
	var body struct {
		Quantities map[string]types.FlexFloat64 `json:"quantities"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Quantities) == 0 {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "emission.validation.input")
	}

	quantities := make(map[string]float64, len(body.Quantities))
	for category, quantity := range body.Quantities {
		quantities[category] = quantity.Float64()
	}

	contributions, total, err := services.CalculateEmissions(quantities)
	if err != nil {
		return storeErrorResponse(c, err, "emissionReport")
	}

	pdf, err := report.EmissionReport(contributions, total)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "emissionReport")
	}
	return sendPDF(c, pdf, "emission_report.pdf")
}
