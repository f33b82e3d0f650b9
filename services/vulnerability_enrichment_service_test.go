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

package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/mocks"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vulnerabilityFixture struct {
	dependency                     models.Dependency
	versions                       map[string]models.DependencyVersion
	vulnerabilityRepository        shared.VulnerabilityRepository
	vulnerabilityVersionRepository shared.VulnerabilityVersionRepository
	osv                            *mocks.OSVClient
	nvd                            *mocks.NVDClient
	enqueuer                       *mocks.JobEnqueuer
	service                        *vulnerabilityEnrichmentService
}

func newVulnerabilityFixture(t *testing.T, versions []string, opts ...VulnerabilityEnrichmentOption) vulnerabilityFixture {
	db := integrationtestutil.InitSqliteDatabase(t)
	dependencyRepository := repositories.NewDependencyRepository(db)
	dependencyVersionRepository := repositories.NewDependencyVersionRepository(db)

	dependency, err := dependencyRepository.InsertIfNotExists(context.Background(), "left-pad")
	require.NoError(t, err)

	stored := make(map[string]models.DependencyVersion, len(versions))
	for _, v := range versions {
		version := models.DependencyVersion{DependencyID: dependency.ID, Version: v, VersionID: "left-pad@" + v}
		require.NoError(t, dependencyVersionRepository.Upsert(context.Background(), &version))
		found, err := dependencyVersionRepository.FindByVersion(context.Background(), dependency.ID, v)
		require.NoError(t, err)
		stored[v] = found
	}

	f := vulnerabilityFixture{
		dependency:                     dependency,
		versions:                       stored,
		vulnerabilityRepository:        repositories.NewVulnerabilityRepository(db),
		vulnerabilityVersionRepository: repositories.NewVulnerabilityVersionRepository(db),
		osv:                            mocks.NewOSVClient(t),
		nvd:                            mocks.NewNVDClient(t),
		enqueuer:                       mocks.NewJobEnqueuer(t),
	}
	f.service = NewVulnerabilityEnrichmentService(dependencyRepository, dependencyVersionRepository, f.vulnerabilityRepository, f.vulnerabilityVersionRepository, f.osv, f.nvd, f.enqueuer, opts...)
	return f
}

func osvResponse(introduced, fixed string) dtos.OSVQueryResponse {
	return dtos.OSVQueryResponse{Vulns: []dtos.OSV{{
		ID:        "GHSA-xxxx-yyyy-zzzz",
		Summary:   "Prototype pollution",
		Aliases:   []string{"CVE-2021-1234"},
		Published: "2021-03-01T00:00:00Z",
		Severity:  []dtos.OSVSeverity{{Type: "CVSS_V3", Score: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"}},
		Affected: []dtos.OSVAffected{{
			Package: dtos.OSVPackage{Name: "left-pad", Ecosystem: "npm"},
			Ranges: []dtos.OSVRange{{Type: "SEMVER", Events: []dtos.OSVEvent{
				{Introduced: introduced},
				{Fixed: fixed},
			}}},
		}},
		DatabaseSpecific: dtos.OSVDatabaseSpecific{CweIDs: []string{"CWE-1321"}, Severity: "HIGH"},
	}}}
}

func TestFetchVulnerabilityInfo(t *testing.T) {
	job := jobs.GetVulnerabilityInfo{DependencyName: "left-pad", Ecosystem: "npm"}

	t.Run("should store one introduced and one fixed row for a resolvable range", func(t *testing.T) {
		f := newVulnerabilityFixture(t, []string{"1.0.0", "1.0.1"})
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(osvResponse("1.0.0", "1.0.1"), nil)
		f.enqueuer.On("Enqueue", mock.Anything, mock.MatchedBy(func(j jobs.Job) bool {
			cveJob, ok := j.(jobs.GetCVEInfo)
			return ok && cveJob.CveID == "CVE-2021-1234" && cveJob.DependencyID == f.dependency.ID
		}), jobs.CVEInfoOptions()).Return(models.Job{}, nil).Once()

		result, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentSucceeded, result.Status)
		assert.Equal(t, 1, result.Enqueued)
		assert.Zero(t, result.Dangling)

		vuln, err := f.vulnerabilityRepository.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
		require.NoError(t, err)
		assert.Equal(t, f.dependency.ID, vuln.DependencyID)
		assert.Equal(t, "CVE-2021-1234", vuln.CveID)
		assert.Equal(t, "HIGH", vuln.Intensity)
		assert.Equal(t, []string{"CWE-1321"}, []string(vuln.CweIDs))

		rows, err := f.vulnerabilityVersionRepository.ListByVulnerability(context.Background(), vuln.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		byStatus := map[models.VulnerabilityVersionStatus]models.VulnerabilityVersion{}
		for _, row := range rows {
			byStatus[row.Status] = row
		}
		assert.Equal(t, f.versions["1.0.0"].ID, byStatus[models.VulnerabilityVersionStatusIntroduced].DependencyVersionID)
		assert.Equal(t, f.versions["1.0.1"].ID, byStatus[models.VulnerabilityVersionStatusFixed].DependencyVersionID)
		assert.Equal(t, "npm", byStatus[models.VulnerabilityVersionStatusFixed].Source)
	})

	t.Run("should not duplicate anything when run twice", func(t *testing.T) {
		f := newVulnerabilityFixture(t, []string{"1.0.0", "1.0.1"})
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(osvResponse("1.0.0", "1.0.1"), nil)
		f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return(models.Job{}, nil)

		for range 2 {
			_, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
			require.NoError(t, err)
		}

		vulns, err := f.vulnerabilityRepository.ListByDependency(context.Background(), f.dependency.ID)
		require.NoError(t, err)
		require.Len(t, vulns, 1)

		rows, err := f.vulnerabilityVersionRepository.ListByVulnerability(context.Background(), vulns[0].ID)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("should skip ranges pointing to unknown versions", func(t *testing.T) {
		f := newVulnerabilityFixture(t, []string{"1.0.1"})
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(osvResponse("0", "1.0.1"), nil)
		f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return(models.Job{}, nil)

		result, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Dangling)

		vuln, err := f.vulnerabilityRepository.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
		require.NoError(t, err)
		rows, err := f.vulnerabilityVersionRepository.ListByVulnerability(context.Background(), vuln.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should mark only the versions strictly between the endpoints when the sweep is enabled", func(t *testing.T) {
		f := newVulnerabilityFixture(t, []string{"0.9.0", "1.0.0", "1.0.5", "1.1.0"}, WithAffectedRangeSweep(true))
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(osvResponse("1.0.0", "1.1.0"), nil)
		f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return(models.Job{}, nil)

		_, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
		require.NoError(t, err)

		vuln, err := f.vulnerabilityRepository.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
		require.NoError(t, err)
		rows, err := f.vulnerabilityVersionRepository.ListByVulnerability(context.Background(), vuln.ID)
		require.NoError(t, err)

		notFixed := []uuid.UUID{}
		for _, row := range rows {
			if row.Status == models.VulnerabilityVersionStatusNotFixed {
				notFixed = append(notFixed, row.DependencyVersionID)
			}
		}
		assert.Equal(t, []uuid.UUID{f.versions["1.0.5"].ID}, notFixed)
		assert.Len(t, rows, 3)
	})

	t.Run("should finish without error when osv has nothing", func(t *testing.T) {
		f := newVulnerabilityFixture(t, nil)
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(dtos.OSVQueryResponse{}, nil)

		result, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentSkipped, result.Status)
	})

	t.Run("should skip vulnerabilities of unknown dependencies", func(t *testing.T) {
		f := newVulnerabilityFixture(t, nil)
		f.osv.On("QueryPackage", mock.Anything, "express", "npm").Return(osvResponse("1.0.0", "1.0.1"), nil)

		result, err := f.service.FetchVulnerabilityInfo(context.Background(), jobs.GetVulnerabilityInfo{DependencyName: "express", Ecosystem: "npm"})
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentSkipped, result.Status)
		assert.Equal(t, "unknown dependency", result.Reason)
	})

	t.Run("should swallow osv failures", func(t *testing.T) {
		f := newVulnerabilityFixture(t, nil)
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(dtos.OSVQueryResponse{}, errors.New("osv is down"))

		result, err := f.service.FetchVulnerabilityInfo(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentFailed, result.Status)
	})
}

func TestFetchCVEInfo(t *testing.T) {
	nvdResponse := func(t *testing.T, raw string) dtos.NVDResponse {
		var res dtos.NVDResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &res))
		return res
	}

	t.Run("should keep the nvd vectors and fill the missing versions from osv", func(t *testing.T) {
		f := newVulnerabilityFixture(t, []string{"1.0.0", "1.0.1"})
		f.osv.On("QueryPackage", mock.Anything, "left-pad", "npm").Return(osvResponse("1.0.0", "1.0.1"), nil)

		var cveJob jobs.GetCVEInfo
		f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			cveJob = args.Get(1).(jobs.GetCVEInfo)
		}).Return(models.Job{}, nil)

		_, err := f.service.FetchVulnerabilityInfo(context.Background(), jobs.GetVulnerabilityInfo{DependencyName: "left-pad", Ecosystem: "npm"})
		require.NoError(t, err)

		// osv knows a v4 vector as well
		cveJob.Vuln.CvssSeverity = append(cveJob.Vuln.CvssSeverity, dtos.OSVSeverity{Type: "CVSS_V4", Score: "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N"})

		f.nvd.On("GetCVE", mock.Anything, "CVE-2021-1234").Return(nvdResponse(t, `{"vulnerabilities":[{"cve":{
			"id":"CVE-2021-1234",
			"vulnStatus":"Analyzed",
			"descriptions":[{"lang":"es","value":"contaminación"},{"lang":"en","value":"prototype pollution in left-pad"}],
			"metrics":{"cvssMetricV31":[{"cvssData":{"version":"3.1","vectorString":"CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:L/I:L/A:N","baseScore":4.8}}]},
			"weaknesses":[{"description":[{"lang":"en","value":"CWE-1321"}]}]
		}}]}`), nil)

		result, err := f.service.FetchCVEInfo(context.Background(), cveJob)
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentSucceeded, result.Status)

		vuln, err := f.vulnerabilityRepository.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
		require.NoError(t, err)
		assert.Equal(t, "Analyzed", vuln.NvdVulnStatus)
		assert.Equal(t, "prototype pollution in left-pad", vuln.NvdDescription)
		assert.Equal(t, []string{"CWE-1321"}, []string(vuln.Weaknesses))
		// the osv columns stay as they were
		assert.Equal(t, "Prototype pollution", vuln.Summary)

		severity := vuln.Severity.Data()
		require.NotNil(t, severity.CvssMetricV31)
		assert.Equal(t, "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:L/I:L/A:N", severity.CvssMetricV31.VectorString)
		require.NotNil(t, severity.CvssMetricV40)
		assert.Equal(t, "4.0", severity.CvssMetricV40.Version)
		assert.Nil(t, severity.CvssMetricV30)
	})

	t.Run("should skip cves the nvd does not know", func(t *testing.T) {
		f := newVulnerabilityFixture(t, nil)
		f.nvd.On("GetCVE", mock.Anything, "CVE-2021-1234").Return(nvdResponse(t, `{"vulnerabilities":[]}`), nil)

		result, err := f.service.FetchCVEInfo(context.Background(), jobs.GetCVEInfo{DependencyID: f.dependency.ID, CveID: "CVE-2021-1234"})
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentSkipped, result.Status)

		_, err = f.vulnerabilityRepository.ReadByExternalID(context.Background(), "CVE-2021-1234")
		assert.Error(t, err)
	})
}
