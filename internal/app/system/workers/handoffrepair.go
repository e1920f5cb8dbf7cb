// internal/app/system/workers/handoffrepair.go
package workers

import (
	"context"
	"sync"
	"time"

	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	strategyheadstore "github.com/dalemusser/incharge/internal/app/store/strategyhead"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandoffRepair is a background worker that reconciles the client hand-off
// pair. Handing a client to the strategy head is two writes: insert the
// hand-off record, then set the flag on the client. The pair is not wrapped
// in a transaction, so a crash between the writes leaves a record whose
// source client still reads as never handed off. This worker finds those
// clients and carries the record's time and actor stamp onto them.
type HandoffRepair struct {
	clients      *clientstore.Store
	strategyHead *strategyheadstore.Store
	log          *zap.Logger
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
}

// NewHandoffRepair creates a new hand-off repair worker.
func NewHandoffRepair(clients *clientstore.Store, strategyHead *strategyheadstore.Store, logger *zap.Logger, interval time.Duration) *HandoffRepair {
	return &HandoffRepair{
		clients:      clients,
		strategyHead: strategyHead,
		log:          logger,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the background repair loop.
func (w *HandoffRepair) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("hand-off repair worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *HandoffRepair) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("hand-off repair worker stopped")
}

func (w *HandoffRepair) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.repair()
		}
	}
}

func (w *HandoffRepair) repair() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	recs, err := w.strategyHead.ListAll(ctx)
	if err != nil {
		w.log.Error("failed to list hand-off records", zap.Error(err))
		return
	}

	var fixed int
	for _, rec := range recs {
		c, err := w.clients.GetByID(ctx, rec.ClientRef)
		if err == mongo.ErrNoDocuments {
			// Record outlived its client; nothing to repair.
			continue
		}
		if err != nil {
			w.log.Error("failed to load client for repair",
				zap.String("client_ref", rec.ClientRef.Hex()), zap.Error(err))
			continue
		}
		if c.Deleted || c.SentToStrategyHead {
			continue
		}
		if err := w.clients.MarkSentToStrategyHeadAt(ctx, c.ID, rec.SentAt, rec.SentBy); err != nil {
			w.log.Error("failed to repair hand-off flag",
				zap.String("client_ref", rec.ClientRef.Hex()), zap.Error(err))
			continue
		}
		fixed++
	}

	if fixed > 0 {
		w.log.Info("repaired hand-off flags", zap.Int("count", fixed))
	}
}
