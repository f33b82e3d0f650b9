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

package dtos

type EnrichmentStatus string

const (
	EnrichmentSucceeded EnrichmentStatus = "succeeded"
	EnrichmentPartial   EnrichmentStatus = "partial"
	EnrichmentFailed    EnrichmentStatus = "failed"
	EnrichmentSkipped   EnrichmentStatus = "skipped"
)

type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

type StepResult struct {
	Step   string     `json:"step"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
	Count  int        `json:"count,omitempty"`
}

// EnrichmentResult describes what a worker actually did. Upstream failures
// end up here instead of being returned as errors.
type EnrichmentResult struct {
	Job        string           `json:"job"`
	Status     EnrichmentStatus `json:"status"`
	Reason     string           `json:"reason,omitempty"`
	Steps      []StepResult     `json:"steps"`
	Dangling   int              `json:"dangling"`
	Enqueued   int              `json:"enqueued"`
	skipReason string
}

func NewEnrichmentResult(job string) *EnrichmentResult {
	return &EnrichmentResult{Job: job, Steps: []StepResult{}}
}

func (r *EnrichmentResult) Step(step string, err error) {
	if err != nil {
		r.Steps = append(r.Steps, StepResult{Step: step, Status: StepFailed, Error: err.Error()})
		return
	}
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepOK})
}

func (r *EnrichmentResult) StepWithCount(step string, count int) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepOK, Count: count})
}

func (r *EnrichmentResult) SkipStep(step string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepSkipped})
}

// Skip marks the whole job as terminal without doing any work
func (r *EnrichmentResult) Skip(reason string) *EnrichmentResult {
	r.skipReason = reason
	r.Reason = reason
	r.Status = EnrichmentSkipped
	return r
}

// Finish derives the overall status from the recorded steps
func (r *EnrichmentResult) Finish() *EnrichmentResult {
	if r.skipReason != "" {
		r.Status = EnrichmentSkipped
		return r
	}
	ok, failed := 0, 0
	for _, s := range r.Steps {
		switch s.Status {
		case StepOK:
			ok++
		case StepFailed:
			failed++
		}
	}
	switch {
	case failed == 0:
		r.Status = EnrichmentSucceeded
	case ok == 0:
		r.Status = EnrichmentFailed
	default:
		r.Status = EnrichmentPartial
	}
	return r
}
