// Package sigs registers callbacks for incoming OS signals.
package sigs

import (
	"os"
	"os/signal"
	"sync"
)

// Handle calls handler for every delivery of any of sigs until the returned
// stop function is called. Handlers run one at a time on a dedicated
// goroutine, in delivery order. stop unregisters the signals, waits for a
// running handler to return and is safe to call more than once.
//
// With no signals Handle relays every incoming signal, as signal.Notify does.
func Handle(handler func(os.Signal), sigs ...os.Signal) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	signal.Notify(ch, sigs...)

	go func() {
		defer close(finished)
		for {
			select {
			case sig := <-ch:
				handler(sig)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			<-finished
		})
	}
}
