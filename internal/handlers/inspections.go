// inspections.go
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
	"github.com/localnerve/qadesk/internal/parse"
	"github.com/localnerve/qadesk/internal/report"
	"github.com/localnerve/qadesk/internal/utils"
)

// InspectionHandler handles CMM measurement upload routes
type InspectionHandler struct{}

// Parse handles POST /api/inspections/parse
// @Summary Parse a CMM measurement file
// @Description Parse an uploaded CSV or DFQ file into measurement rows for preview
// @Tags Inspections
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or DFQ measurement file"
// @Success 200 {array} models.Measurement
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /inspections/parse [post]
func (h *InspectionHandler) Parse(c *fiber.Ctx) error {
	data, filename, err := uploadedFile(c)
	if err != nil {
		return storeErrorResponse(c, err, "parseInspection")
	}

	measurements, err := parse.ParseCMM(data, filename)
	if err != nil {
		return storeErrorResponse(c, err, "parseInspection")
	}
	return c.Status(fiber.StatusOK).JSON(measurements)
}

// Report handles POST /api/inspections/report
// @Summary Render a first-article inspection report PDF
// @Tags Inspections
// @Accept multipart/form-data
// @Produce application/pdf
// @Param file formData file true "CSV or DFQ measurement file"
// @Success 200 {string} string
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /inspections/report [post]
func (h *InspectionHandler) Report(c *fiber.Ctx) error {
	data, filename, err := uploadedFile(c)
	if err != nil {
		return storeErrorResponse(c, err, "inspectionReport")
	}

	measurements, err := parse.ParseCMM(data, filename)
	if err != nil {
		return storeErrorResponse(c, err, "inspectionReport")
	}

	pdf, err := report.InspectionReport(measurements)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "inspectionReport")
	}
	return sendPDF(c, pdf, "fai_report.pdf")
}
