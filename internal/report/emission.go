// emission.go
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
	"fmt"

	"github.com/localnerve/qadesk/internal/services"
)

// EmissionReport renders the per-category contributions and the total of an
// emission calculation.
func EmissionReport(contributions []services.EmissionContribution, total float64) ([]byte, error) {
	pdf := newDocument("CO2 Emission Report")

	rows := make([][]string, 0, len(contributions)+1)
	for _, c := range contributions {
		rows = append(rows, []string{
			c.Category,
			fmt.Sprintf("%.2f", c.Quantity),
			fmt.Sprintf("%.3f", c.Factor),
			fmt.Sprintf("%.2f", c.Emission),
		})
	}
	rows = append(rows, []string{"Total", "", "", fmt.Sprintf("%.2f", total)})

	writeTable(pdf,
		[]float64{66, 40, 40, 40},
		[]string{"Category", "Quantity", "Factor (kg/unit)", "Emission (kg CO2e)"},
		rows)

	return finish(pdf)
}
