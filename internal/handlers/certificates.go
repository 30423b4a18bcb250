// certificates.go
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
	"github.com/localnerve/qadesk/internal/report"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/utils"
)

// CertificateHandler handles certificate registry routes
type CertificateHandler struct {
	Certificates *services.CertificateService
}

// ListCertificates handles GET /api/certificates
// @Summary List certificates
// @Description Get all certificates with their expiry status computed at read time
// @Tags Certificates
// @Produce json
// @Success 200 {array} models.CertificateWithStatus
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /certificates [get]
func (h *CertificateHandler) ListCertificates(c *fiber.Ctx) error {
	certs, err := h.Certificates.List()
	if err != nil {
		return storeErrorResponse(c, err, "listCertificates")
	}
	return c.Status(fiber.StatusOK).JSON(certs)
}

// AddCertificate handles POST /api/certificates
// @Summary Add certificate
// @Description Append a certificate record to the registry
// @Tags Certificates
// @Accept json
// @Produce json
// @Param body body models.CertificateRecord true "Certificate record"
// @Success 200 {object} models.CertificateWithStatus
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /certificates [post]
func (h *CertificateHandler) AddCertificate(c *fiber.Ctx) error {
	var record models.CertificateRecord
	if err := c.BodyParser(&record); err != nil || record.Name == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "certificate.validation.input")
	}

	added, err := h.Certificates.Store.Add(record)
	if err != nil {
		return storeErrorResponse(c, err, "addCertificate")
	}

	return c.Status(fiber.StatusOK).JSON(models.CertificateWithStatus{
		CertificateRecord: added,
		Status:            h.Certificates.Status(added),
	})
}

// CertificatePDF handles POST /api/certificates/:id/pdf
// @Summary Render a certificate PDF
// @Tags Certificates
// @Produce application/pdf
// @Param id path string true "Certificate ID"
// @Success 200 {string} string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /certificates/{id}/pdf [post]
func (h *CertificateHandler) CertificatePDF(c *fiber.Ctx) error {
	cert, err := h.Certificates.Find(c.Params("id"))
	if err != nil {
		return storeErrorResponse(c, err, "certificatePDF")
	}

	pdf, err := report.CertificateDocument(cert)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "certificatePDF")
	}
	return sendPDF(c, pdf, "certificate.pdf")
}
