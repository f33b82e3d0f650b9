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

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemverSort(t *testing.T) {
	t.Run("should sort by semver and put unparsable versions last", func(t *testing.T) {
		versions := []string{"1.10.0", "not-a-version", "1.2.0", "0.9.1"}
		SemverSort(versions)
		assert.Equal(t, []string{"0.9.1", "1.2.0", "1.10.0", "not-a-version"}, versions)
	})
}

func TestInAffectedRange(t *testing.T) {
	t.Run("should treat introduced as inclusive and fixed as exclusive", func(t *testing.T) {
		assert.True(t, InAffectedRange("1.0.0", "1.0.0", "1.2.0"))
		assert.True(t, InAffectedRange("1.1.5", "1.0.0", "1.2.0"))
		assert.False(t, InAffectedRange("1.2.0", "1.0.0", "1.2.0"))
		assert.False(t, InAffectedRange("0.9.0", "1.0.0", "1.2.0"))
	})

	t.Run("should have no lower bound for introduced 0", func(t *testing.T) {
		assert.True(t, InAffectedRange("0.0.1", "0", "1.0.0"))
	})

	t.Run("should have no upper bound without a fix", func(t *testing.T) {
		assert.True(t, InAffectedRange("99.0.0", "1.0.0", ""))
	})
}

func TestNpmPurl(t *testing.T) {
	assert.Equal(t, "pkg:npm/left-pad@1.0.0", NpmPurl("left-pad", "1.0.0"))
}
