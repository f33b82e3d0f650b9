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
	"slices"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/package-url/packageurl-go"
)

// SemverCompare compares two versions. Parsable versions sort before
// unparsable ones, two unparsable versions are compared lexically.
func SemverCompare(v1, v2 string) int {
	a, errA := semver.NewVersion(v1)
	b, errB := semver.NewVersion(v2)
	switch {
	case errA == nil && errB == nil:
		return a.Compare(b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(v1, v2)
	}
}

func SemverSort(versions []string) {
	slices.SortStableFunc(versions, SemverCompare)
}

func SortVersionInfos(versions []dtos.VersionInfo) {
	slices.SortStableFunc(versions, func(a, b dtos.VersionInfo) int {
		return SemverCompare(a.Version, b.Version)
	})
}

// InAffectedRange reports whether version lies in [introduced, fixed).
// An introduced of "0" or "" has no lower bound, an empty fixed no upper bound.
func InAffectedRange(version, introduced, fixed string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}

	if introduced != "" && introduced != "0" {
		lower, err := semver.NewVersion(introduced)
		if err != nil || v.LessThan(lower) {
			return false
		}
	}

	if fixed != "" {
		upper, err := semver.NewVersion(fixed)
		if err != nil || !v.LessThan(upper) {
			return false
		}
	}
	return true
}

// NpmPurl builds the package url of an npm package version. Scoped
// packages put their scope into the namespace.
func NpmPurl(name, version string) string {
	namespace := ""
	pkgName := name
	if strings.HasPrefix(name, "@") {
		if scope, rest, ok := strings.Cut(name, "/"); ok {
			namespace = scope
			pkgName = rest
		}
	}
	return packageurl.NewPackageURL(packageurl.TypeNPM, namespace, pkgName, version, nil, "").ToString()
}
