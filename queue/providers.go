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

package queue

import (
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("queue",
	fx.Provide(func(jobRepository shared.JobRepository, broker pubsub.Broker) *Queue {
		return NewQueue(jobRepository, broker, DefaultLanes())
	}),
	fx.Provide(func(q *Queue) shared.JobEnqueuer { return q }),
)
