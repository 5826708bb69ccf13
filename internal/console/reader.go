package console

import (
	"bufio"
	"io"
)

// Lines pumps input lines into a channel from a dedicated goroutine. The
// channel is closed on EOF or read error. Reading through a channel lets the
// prompt loop select against context cancellation, so an interrupt aborts a
// pending prompt instead of blocking on a read that may never return.
//
// Closing done releases a pump blocked on an undelivered line, so a cancelled
// loop does not leak the goroutine once input arrives.
func Lines(r io.Reader, done <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return ch
}
