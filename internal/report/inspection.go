// inspection.go
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

package report

import (
	"github.com/localnerve/qadesk/internal/models"
)

// InspectionReport renders a first-article inspection report from parsed
// CMM measurements.
func InspectionReport(measurements []models.Measurement) ([]byte, error) {
	pdf := newDocument("First Article Inspection Report")

	rows := make([][]string, 0, len(measurements))
	for _, m := range measurements {
		rows = append(rows, []string{m.Characteristic, m.Nominal, m.Measured, m.Deviation, m.Status})
	}

	writeTable(pdf,
		[]float64{56, 32, 32, 32, 34},
		[]string{"Characteristic", "Nominal", "Measured", "Deviation", "Status"},
		rows)

	return finish(pdf)
}
