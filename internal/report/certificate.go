// certificate.go
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

	"github.com/localnerve/qadesk/internal/models"
)

// CertificateDocument renders one registry entry as a certificate page.
func CertificateDocument(cert models.CertificateWithStatus) ([]byte, error) {
	pdf := newDocument("Certificate")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, cert.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Standard: %s", cert.Type),
		fmt.Sprintf("Issued: %s", cert.Issued.String()),
		fmt.Sprintf("Expires: %s", cert.Expires.String()),
		fmt.Sprintf("Status: %s", cert.Status),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "C", false, 0, "")
	}

	return finish(pdf)
}
