package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-pizzaform/pkg/client"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/validation"
)

// Validator checks single fields and whole orders. validation.Schema
// satisfies it.
type Validator interface {
	ValidateField(ctx context.Context, name string, value any) error
	Validate(ctx context.Context, o order.Order) error
}

// Submitter sends an order to the order endpoint. *client.Client satisfies it.
type Submitter interface {
	PlaceOrder(ctx context.Context, o order.Order) (client.Receipt, error)
}

// Form is the order form state container. It is safe for concurrent use.
type Form struct {
	submitter Submitter
	validator Validator
	fallback  string
	listeners []Listener

	mu         sync.Mutex
	values     order.Order
	errors     map[string]string
	outcome    Outcome
	disabled   bool
	submitting bool

	seq      uint64
	fieldSeq map[string]uint64
	orderSeq uint64

	pending errgroup.Group
}

// New creates an empty form that submits through submitter. The submit
// control starts disabled and the empty order is validated immediately.
func New(submitter Submitter, options ...Option) *Form {
	f := &Form{
		submitter: submitter,
		validator: validation.OrderSchema(),
		fallback:  DefaultFailureMessage,
		values:    order.Empty(),
		errors:    make(map[string]string),
		disabled:  true,
		fieldSeq:  make(map[string]uint64),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	f.mu.Lock()
	token := f.nextOrderTokenLocked()
	f.mu.Unlock()
	f.validateOrder(context.Background(), token, order.Empty())

	return f
}

// Change applies ev to the order and schedules validation of the changed
// field and of the whole order.
func (f *Form) Change(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	next, fieldValue, err := apply(f.values, ev)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.values = next
	token := f.nextOrderTokenLocked()
	name := strings.TrimSpace(ev.Name)
	f.fieldSeq[name] = token
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.emit(snap)
	f.validateField(ctx, token, name, fieldValue)
	f.validateOrder(ctx, token, next.Clone())
	return nil
}

// Submit sends the current order. On success the order is reset to empty; on
// failure it is kept and the failure message is recorded. The returned error
// is non-nil only when the attempt was refused before sending.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	if f.submitter == nil {
		return Outcome{}, ErrNoSubmitter
	}

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Outcome{}, ErrSubmitInFlight
	}
	if f.disabled {
		f.mu.Unlock()
		return Outcome{}, ErrSubmitDisabled
	}
	f.submitting = true
	values := f.values.Clone()
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.emit(snap)

	receipt, err := f.submitter.PlaceOrder(ctx, values)

	f.mu.Lock()
	f.submitting = false
	var (
		outcome Outcome
		reset   bool
		token   uint64
	)
	if err != nil {
		outcome = Outcome{Kind: OutcomeFailure, Message: f.failureMessage(err), Cause: err}
	} else {
		outcome = Outcome{Kind: OutcomeSuccess, Message: receipt.Message}
		f.values = order.Empty()
		f.disabled = true
		token = f.nextOrderTokenLocked()
		reset = true
	}
	f.outcome = outcome
	snap = f.snapshotLocked()
	f.mu.Unlock()
	f.emit(snap)

	if reset {
		f.validateOrder(context.WithoutCancel(ctx), token, order.Empty())
	}
	return outcome, nil
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Wait blocks until every scheduled validation has finished. It must not be
// called concurrently with Change or Submit.
func (f *Form) Wait() {
	_ = f.pending.Wait()
}

func (f *Form) validateField(ctx context.Context, token uint64, name string, value any) {
	f.pending.Go(func() error {
		err := f.validator.ValidateField(ctx, name, value)
		if isContextErr(err) {
			return nil
		}
		msg := validation.MessageOf(err)

		f.mu.Lock()
		if f.fieldSeq[name] != token {
			f.mu.Unlock()
			return nil
		}
		f.errors[name] = msg
		snap := f.snapshotLocked()
		f.mu.Unlock()

		f.emit(snap)
		return nil
	})
}

func (f *Form) validateOrder(ctx context.Context, token uint64, values order.Order) {
	f.pending.Go(func() error {
		err := f.validator.Validate(ctx, values)
		if isContextErr(err) {
			return nil
		}

		f.mu.Lock()
		if f.orderSeq != token {
			f.mu.Unlock()
			return nil
		}
		f.disabled = err != nil
		snap := f.snapshotLocked()
		f.mu.Unlock()

		f.emit(snap)
		return nil
	})
}

func (f *Form) nextOrderTokenLocked() uint64 {
	f.seq++
	f.orderSeq = f.seq
	return f.seq
}

func (f *Form) snapshotLocked() Snapshot {
	errs := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	snap := Snapshot{
		Values:     f.values.Clone(),
		Errors:     errs,
		Disabled:   f.disabled,
		Submitting: f.submitting,
	}
	switch f.outcome.Kind {
	case OutcomeSuccess:
		snap.Success = f.outcome.Message
	case OutcomeFailure:
		snap.Failure = f.outcome.Message
	}
	return snap
}

func (f *Form) emit(snap Snapshot) {
	for _, l := range f.listeners {
		l(snap)
	}
}

func (f *Form) failureMessage(err error) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return f.fallback
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
