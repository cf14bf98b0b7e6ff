/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"github.com/ixoworld/elysian/internal/logfields"
	"github.com/ixoworld/elysian/internal/pkg/log"
	"github.com/ixoworld/elysian/pkg/event/spi"
)

// Initialize creates the event bus and starts the indexing subscribers on the commit and
// settlement topics.
func Initialize() (*Bus, error) {
	eventBus := NewEventBus()

	for _, topic := range []string{spi.CommitEventTopic, spi.SettlementEventTopic} {
		subscriber, err := NewEventSubscriber(eventBus, topic, handleEvent)
		if err != nil {
			return nil, err
		}

		subscriber.Start()
	}

	return eventBus, nil
}

func handleEvent(e *spi.Event) error {
	logger.Info("indexing event",
		log.WithID(e.ID),
		log.WithName(string(e.Type)),
		logfields.WithTxHash(e.TransactionID),
		logfields.WithProjectDID(e.Subject),
		log.WithEvent(e),
	)

	return nil
}
