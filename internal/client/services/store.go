package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoLocalMatch is returned by a successful update whose record is not
	// in the local collection. The server accepted the change; the cache is
	// left as it was.
	ErrNoLocalMatch = errors.New("updated record not found in local collection")
	// ErrMainUserProtected is returned without a remote call when the target
	// of a user mutation is the organization's main user.
	ErrMainUserProtected = errors.New("main user cannot be modified")
	// ErrNotCached is returned when an operation needs a record from the
	// local collection and it is not there. No request is sent.
	ErrNotCached = errors.New("record not found in local collection")
	// ErrSuperseded is returned by an operation whose result had to be
	// applied but a reset happened while it was in flight.
	ErrSuperseded = errors.New("operation superseded by reset")
)

// Status is the status surface of a slice. An empty string means no message.
type Status struct {
	Loading        bool
	Error          string
	SuccessMessage string
}

// RejectedError is a 2xx response whose envelope reports failure.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "request rejected"
	}
	return "request rejected: " + e.Message
}

func messageOr(err error, fallback string) string {
	var rej *RejectedError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return client.MessageOr(err, fallback)
}

func sliceLogger(log logging.Logger, name string) logging.Logger {
	if log == nil {
		log = logging.Nop()
	}
	return log.With("slice", name)
}

// outcome is what a fulfilled operation does to its slice. apply runs with
// the slice lock held and receives the operation's sequence number.
type outcome struct {
	message string
	apply   func(seq uint64) error
	// required makes a failed or skipped apply reject the operation.
	required bool
}

// tracker owns a slice's status surface.
//
// Every operation takes a sequence number when it starts. Settling writes
// Error and SuccessMessage only if no newer operation has already settled,
// and an operation that started before the last reset neither writes status
// nor applies its mutation.
type tracker struct {
	mu        sync.Mutex
	status    Status
	inFlight  int
	seq       uint64
	statusSeq uint64
	resetSeq  uint64
}

func (t *tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// ClearMessages resets Error and SuccessMessage. Loading and any cached data
// are untouched.
func (t *tracker) ClearMessages() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Error = ""
	t.status.SuccessMessage = ""
}

func (t *tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.inFlight++
	t.status.Loading = true
	t.status.Error = ""
	return t.seq
}

func (t *tracker) settleLocked(seq uint64, errMsg, successMsg string) {
	t.inFlight--
	t.status.Loading = t.inFlight > 0
	if seq <= t.resetSeq || seq < t.statusSeq {
		return
	}
	t.statusSeq = seq
	t.status.Error = errMsg
	if successMsg != "" {
		t.status.SuccessMessage = successMsg
	}
}

func (t *tracker) resetLocked() {
	t.resetSeq = t.seq
	t.statusSeq = t.seq
	t.status = Status{Loading: t.inFlight > 0}
}

// run executes call as one tracked operation and returns its error. A
// rejection sets Error from the response or fallback. A fulfilment applies
// the outcome and sets SuccessMessage when one is given.
func (t *tracker) run(ctx context.Context, log logging.Logger, op, fallback string, call func(ctx context.Context) (outcome, error)) error {
	seq := t.begin()
	out, err := call(ctx)

	t.mu.Lock()
	if err != nil {
		t.settleLocked(seq, messageOr(err, fallback), "")
		t.mu.Unlock()
		log.Warn(ctx, "operation rejected", "op", op, "error", err)
		return err
	}

	var applyErr error
	switch {
	case out.apply == nil:
	case seq > t.resetSeq:
		applyErr = out.apply(seq)
	case out.required:
		applyErr = ErrSuperseded
	}
	if out.required && applyErr != nil {
		t.settleLocked(seq, messageOr(applyErr, fallback), "")
		t.mu.Unlock()
		log.Warn(ctx, "operation rejected", "op", op, "error", applyErr)
		return applyErr
	}
	t.settleLocked(seq, "", out.message)
	t.mu.Unlock()

	if applyErr != nil {
		log.Warn(ctx, "operation fulfilled without local effect", "op", op, "error", applyErr)
	}
	return applyErr
}

// Collection caches one resource collection plus an optional "current"
// record, keyed by RecordID.
type Collection[T models.Record] struct {
	tracker

	items      []T
	current    *T
	replaceSeq uint64
	fetches    singleflight.Group
}

// Items returns a copy of the cached collection.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Find returns the cached record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Current returns the record loaded by the last single-record fetch.
func (c *Collection[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		var zero T
		return zero, false
	}
	return *c.current, true
}

// Reset empties the collection and the status surface. Operations still in
// flight settle without effect.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	c.items = nil
	c.current = nil
	c.replaceSeq = c.seq
}

// fetchAll replaces the collection with the list fetch returns. Concurrent
// calls share one request.
func (c *Collection[T]) fetchAll(ctx context.Context, log logging.Logger, fallback string, fetch func(ctx context.Context) ([]T, error)) error {
	return c.run(ctx, log, "fetchAll", fallback, func(ctx context.Context) (outcome, error) {
		v, err, _ := c.fetches.Do("all", func() (any, error) {
			return fetch(ctx)
		})
		if err != nil {
			return outcome{}, err
		}
		items := v.([]T)
		return outcome{apply: func(seq uint64) error {
			c.replaceAllLocked(seq, items)
			return nil
		}}, nil
	})
}

func (c *Collection[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.RecordID() == id })
}

func (c *Collection[T]) replaceAllLocked(seq uint64, items []T) {
	if seq < c.replaceSeq {
		return
	}
	c.replaceSeq = seq
	c.items = slices.Clone(items)
}

func (c *Collection[T]) prependLocked(item T) {
	c.items = append([]T{item}, c.items...)
}

func (c *Collection[T]) appendLocked(item T) {
	c.items = append(c.items, item)
}

// replaceLocked swaps in item for the element with the same id. The element
// is replaced whole, never merged.
func (c *Collection[T]) replaceLocked(item T) error {
	i := c.indexLocked(item.RecordID())
	if i < 0 {
		return ErrNoLocalMatch
	}
	items := slices.Clone(c.items)
	items[i] = item
	c.items = items
	if c.current != nil && (*c.current).RecordID() == item.RecordID() {
		cur := item
		c.current = &cur
	}
	return nil
}

func (c *Collection[T]) removeLocked(id string) {
	if i := c.indexLocked(id); i >= 0 {
		c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	}
	if c.current != nil && (*c.current).RecordID() == id {
		c.current = nil
	}
}

func (c *Collection[T]) setCurrentLocked(item T) {
	c.current = &item
}
