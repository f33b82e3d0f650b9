// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package jobs

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("should restore the typed cve job", func(t *testing.T) {
		original := GetCVEInfo{
			DependencyID: uuid.New(),
			CveID:        "CVE-2021-1234",
			Vuln:         dtos.NormalizedOSVVuln{ID: "GHSA-1", CvssSeverity: []dtos.OSVSeverity{{Type: "CVSS_V3", Score: "CVSS:3.1/AV:N"}}},
		}
		payload, err := json.Marshal(original)
		assert.Nil(t, err)

		job, err := Decode(original.JobName(), payload)

		assert.Nil(t, err)
		assert.Equal(t, original, job)
		assert.Equal(t, LaneVulnerabilities, job.Lane())
	})

	t.Run("should fail on unknown job names", func(t *testing.T) {
		_, err := Decode("send-email", []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("should fail on broken payloads", func(t *testing.T) {
		_, err := Decode(NameGetDependencyInfo, []byte(`{`))
		assert.Error(t, err)
	})
}
