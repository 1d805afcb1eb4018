// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesMatchingSubscribers(t *testing.T) {
	b := NewBus()

	var got1, got2 []EventType
	b.Subscribe(DueCreated, func(ev Event) { got1 = append(got1, ev.Type) })
	b.Subscribe(DueCreated, func(ev Event) { got2 = append(got2, ev.Type) })

	b.Publish(Event{Type: DueCreated})
	b.Publish(Event{Type: DueCreated})

	assert.Equal(t, []EventType{DueCreated, DueCreated}, got1)
	assert.Equal(t, []EventType{DueCreated, DueCreated}, got2)
}

func TestBus_PublishSkipsOtherEventTypes(t *testing.T) {
	b := NewBus()

	count := 0
	b.Subscribe(PaymentMade, func(Event) { count++ })

	b.Publish(Event{Type: DueCreated})
	b.Publish(Event{Type: CreditLimitUpdated})
	b.Publish(Event{Type: PaymentMade})

	assert.Equal(t, 1, count)
}

func TestBus_PublishStampsTime(t *testing.T) {
	b := NewBus()

	var got Event
	b.Subscribe(DueUpdated, func(ev Event) { got = ev })

	b.Publish(Event{Type: DueUpdated})

	require.False(t, got.At.IsZero())
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus()

	count := 0
	unsubscribe := b.Subscribe(DueCreated, func(Event) { count++ })

	b.Publish(Event{Type: DueCreated})
	unsubscribe()
	b.Publish(Event{Type: DueCreated})

	assert.Equal(t, 1, count)
}

func TestBus_UnsubscribeTwiceIsSafe(t *testing.T) {
	b := NewBus()

	unsubscribe := b.Subscribe(DueCreated, func(Event) {})
	unsubscribe()
	assert.NotPanics(t, func() { unsubscribe() })
}

func TestBus_EventDataPassedThrough(t *testing.T) {
	b := NewBus()

	var got Event
	b.Subscribe(PaymentMade, func(ev Event) { got = ev })

	b.Publish(Event{Type: PaymentMade, Data: map[string]any{"due_id": int64(42)}})

	assert.Equal(t, int64(42), got.Data["due_id"])
}

func TestNop_DropsEverything(t *testing.T) {
	n := NewNop()

	assert.NotPanics(t, func() {
		unsubscribe := n.Subscribe(DueCreated, func(Event) { t.Fatal("nop notifier must not deliver") })
		n.Publish(Event{Type: DueCreated})
		unsubscribe()
	})
}
