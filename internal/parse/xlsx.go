// xlsx.go
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

package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseEmissionWorkbook reads bulk emission quantities from a spreadsheet.
// Row 1 holds category names, row 2 the quantities; only the first data row
// is consulted. Blank cells are skipped.
func ParseEmissionWorkbook(r io.Reader) (map[string]float64, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: workbook has no data row", ErrParse)
	}

	header := rows[0]
	values := rows[1]

	quantities := make(map[string]float64)
	for i, category := range header {
		category = strings.TrimSpace(category)
		if category == "" || i >= len(values) {
			continue
		}
		cell := strings.TrimSpace(values[i])
		if cell == "" {
			continue
		}

		quantity, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q has non-numeric quantity %q", ErrParse, category, cell)
		}
		quantities[category] = quantity
	}

	if len(quantities) == 0 {
		return nil, fmt.Errorf("%w: workbook data row is empty", ErrParse)
	}
	return quantities, nil
}
