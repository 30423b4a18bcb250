// audits.go
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
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/middleware"
	"github.com/localnerve/qadesk/internal/models"
	"github.com/localnerve/qadesk/internal/report"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/types"
	"github.com/localnerve/qadesk/internal/utils"
)

// AuditHandler handles audit ledger routes
type AuditHandler struct {
	Ledger        *store.AuditLedger
	QuestionsFile string
}

// ListAudits handles GET /api/audits?component=...
// @Summary List audit records
// @Description Get ledger rows in stored order, optionally filtered by component
// @Tags Audits
// @Produce json
// @Param component query string false "Component name filter"
// @Success 200 {array} models.AuditRecord
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /audits [get]
func (h *AuditHandler) ListAudits(c *fiber.Ctx) error {
	rows, err := h.Ledger.List(c.Query("component"))
	if err != nil {
		return storeErrorResponse(c, err, "listAudits")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// SubmitAudit handles POST /api/audits
// @Summary Submit audit
// @Description Append one ledger row per answered question of a submission
// @Tags Audits
// @Accept json
// @Produce json
// @Param body body services.AuditSubmission true "Audit submission"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /audits [post]
func (h *AuditHandler) SubmitAudit(c *fiber.Ctx) error {
	var body struct {
		Component string                               `json:"component"`
		Auditor   string                               `json:"auditor"`
		Date      string                               `json:"date"`
		Version   string                               `json:"version"`
		Answers   types.FlexList[services.AuditAnswer] `json:"answers"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "audit.validation.input")
	}

	session := middleware.SessionFromCtx(c)
	if session == nil {
		return utils.ErrorResponse(c, "No session", fiber.StatusUnauthorized, "audit.session")
	}

	records, err := services.BuildAuditRecords(services.AuditSubmission{
		Component: body.Component,
		Auditor:   body.Auditor,
		Date:      body.Date,
		Version:   body.Version,
		Answers:   body.Answers.Slice(),
	}, session.Email)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "audit.validation.submission")
	}

	if err := h.Ledger.Append(records); err != nil {
		return storeErrorResponse(c, err, "submitAudit")
	}
	return utils.MutationSuccessResponse(c, len(records))
}

// PatchAuditResult handles PATCH /api/audits/:id
// @Summary Patch audit result by ID
// @Description Overwrite the result field of the row with the given ID
// @Tags Audits
// @Accept json
// @Produce json
// @Param id path string true "Audit record ID"
// @Param body body object true "New result"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /audits/{id} [patch]
func (h *AuditHandler) PatchAuditResult(c *fiber.Ctx) error {
	result, ok := h.parseResultBody(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "audit.validation.input")
	}

	if err := h.Ledger.PatchResultByID(c.Params("id"), result); err != nil {
		return storeErrorResponse(c, err, "patchAuditResult")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// PatchAuditResultByRow handles PATCH /api/audits/row/:index
// @Summary Patch audit result by row position
// @Description Administrative edit path addressing a row by zero-based position
// @Tags Audits
// @Accept json
// @Produce json
// @Param index path int true "Zero-based row index"
// @Param body body object true "New result"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /audits/row/{index} [patch]
func (h *AuditHandler) PatchAuditResultByRow(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.ErrorResponse(c, "Invalid row index", fiber.StatusBadRequest, "audit.validation.input")
	}

	result, ok := h.parseResultBody(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "audit.validation.input")
	}

	if err := h.Ledger.PatchResult(index, result); err != nil {
		return storeErrorResponse(c, err, "patchAuditResultByRow")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// ListQuestions handles GET /api/audits/questions
// @Summary Get the active question set
// @Tags Audits
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /audits/questions [get]
func (h *AuditHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := services.LoadQuestions(h.QuestionsFile)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listQuestions")
	}
	return c.Status(fiber.StatusOK).JSON(questions)
}

// ExportAudits handles GET /api/audits/export
// @Summary Download the ledger as CSV
// @Tags Audits
// @Produce text/csv
// @Success 200 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /audits/export [get]
func (h *AuditHandler) ExportAudits(c *fiber.Ctx) error {
	csvData, err := h.Ledger.ExportCSV()
	if err != nil {
		return storeErrorResponse(c, err, "exportAudits")
	}
	return sendCSV(c, csvData, "audits.csv")
}

// AuditReport handles POST /api/audits/report
// @Summary Render an audit report PDF
// @Description Render the ledger rows for a component as a PDF document
// @Tags Audits
// @Accept json
// @Produce application/pdf
// @Param body body object true "Component filter"
// @Success 200 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /audits/report [post]
func (h *AuditHandler) AuditReport(c *fiber.Ctx) error {
	var body struct {
		Component string `json:"component"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "audit.validation.input")
	}

	rows, err := h.Ledger.List(body.Component)
	if err != nil {
		return storeErrorResponse(c, err, "auditReport")
	}

	pdf, err := report.AuditReport(body.Component, rows)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auditReport")
	}
	return sendPDF(c, pdf, "audit_report.pdf")
}

// parseResultBody reads and normalizes the {result} patch body.
func (h *AuditHandler) parseResultBody(c *fiber.Ctx) (string, bool) {
	var body struct {
		Result string `json:"result"`
	}
	if err := c.BodyParser(&body); err != nil {
		return "", false
	}
	result, ok := models.NormalizeResult(body.Result)
	if !ok {
		return "", false
	}
	return result, true
}
