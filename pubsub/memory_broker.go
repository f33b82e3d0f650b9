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

package pubsub

import (
	"context"
	"sync"
)

// MemoryBroker delivers messages inside a single process. It is used by
// tests and by the cli, which runs api and worker in one process.
type MemoryBroker struct {
	mu          sync.RWMutex
	subscribers map[Channel][]chan map[string]any
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		subscribers: make(map[Channel][]chan map[string]any),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, message Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[message.GetChannel()] {
		select {
		case ch <- message.GetPayload():
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(topic Channel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan map[string]any, 100)
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch, nil
}
