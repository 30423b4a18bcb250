// common.go
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
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/parse"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/utils"
)

// storeErrorResponse maps a store or service error onto the error envelope.
// Validation failures abort the operation without state mutation; anything
// unmapped is an I/O failure for this request.
func storeErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, store.ErrDuplicateName):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".duplicate")
	case errors.Is(err, store.ErrIndexOutOfRange):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".range")
	case errors.Is(err, store.ErrInvalidRecord):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".validation")
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrUnknownCategory):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".validation")
	case errors.Is(err, parse.ErrParse):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnprocessableEntity, errorType+".parse")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// urlParam returns a URL-decoded path parameter. Component names carry
// spaces and other escaped characters.
func urlParam(c *fiber.Ctx, name string) (string, error) {
	return url.QueryUnescape(c.Params(name))
}

// uploadedFile reads the "file" part of a multipart upload in full.
func uploadedFile(c *fiber.Ctx) ([]byte, string, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("%w: missing file upload", parse.ErrParse)
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	return data, header.Filename, nil
}

// sendPDF writes rendered PDF bytes with a download file name.
func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(pdf)
}

// sendCSV writes exported CSV bytes with a download file name.
func sendCSV(c *fiber.Ctx, csvData []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(csvData)
}
