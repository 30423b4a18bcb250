// components.go
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
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/utils"
)

// ComponentHandler handles component registry routes
type ComponentHandler struct {
	Registry *store.ComponentRegistry
}

// ListComponents handles GET /api/components
// @Summary List components
// @Description Get the component catalog in persisted order
// @Tags Components
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *fiber.Ctx) error {
	names, err := h.Registry.List()
	if err != nil {
		return storeErrorResponse(c, err, "listComponents")
	}
	return c.Status(fiber.StatusOK).JSON(names)
}

// AddComponent handles POST /api/components
// @Summary Add component
// @Description Append a new component name to the catalog
// @Tags Components
// @Accept json
// @Produce json
// @Param body body object true "Component name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /components [post]
func (h *ComponentHandler) AddComponent(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "component.validation.input")
	}

	if err := h.Registry.Add(body.Name); err != nil {
		return storeErrorResponse(c, err, "addComponent")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// RenameComponent handles PUT /api/components
// @Summary Rename component
// @Description Replace a component name in place, keeping its position
// @Tags Components
// @Accept json
// @Produce json
// @Param body body object true "Old and new names"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /components [put]
func (h *ComponentHandler) RenameComponent(c *fiber.Ctx) error {
	var body struct {
		Old string `json:"old"`
		New string `json:"new"`
	}
	if err := c.BodyParser(&body); err != nil || body.Old == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "component.validation.input")
	}

	if err := h.Registry.Rename(body.Old, body.New); err != nil {
		return storeErrorResponse(c, err, "renameComponent")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// RemoveComponent handles DELETE /api/components/:name
// @Summary Remove component
// @Description Delete a component name from the catalog; historical audit rows keep the name
// @Tags Components
// @Produce json
// @Param name path string true "Component name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /components/{name} [delete]
func (h *ComponentHandler) RemoveComponent(c *fiber.Ctx) error {
	name, err := urlParam(c, "name")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "component.validation.input")
	}

	if err := h.Registry.Remove(name); err != nil {
		return storeErrorResponse(c, err, "removeComponent")
	}
	return utils.MutationSuccessResponse(c, 1)
}
