package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// successIdx is returned when every close function ran within the context deadline.
	successIdx = -1
)

// Closer collects resource close functions and runs them in LIFO order
// during shutdown.
type Closer struct {
	funcs         []Func
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// Func is the signature of a resource close function.
type Func func(ctx context.Context) error

// NewCloser builds a Closer. forcedTimeout bounds the forced close of
// remaining resources after the shutdown context expires.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout == 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
	}
}

// Add registers a close function.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close runs the registered functions in reverse registration order.
// Functions that did not finish before ctx expired are closed forcibly
// under the forced timeout. Close runs at most once.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		stopIdx, errs := c.gracefulClose(ctx, funcs)
		if stopIdx == successIdx {
			if len(errs) > 0 {
				err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
			}
			return
		}

		remaining := funcs[:stopIdx+1]
		forcedErrs := c.forcedClose(remaining)
		errs = append(errs, forcedErrs...)

		err = fmt.Errorf(
			"shutdown interrupted after %d/%d funcs:\n%s",
			len(funcs)-1-stopIdx,
			len(funcs),
			strings.Join(errs, "\n"),
		)
	})

	return err
}

// gracefulClose walks the functions from last to first until ctx expires.
// Returns the index of the first function that was not run (successIdx when
// all ran) and the collected error messages.
func (c *Closer) gracefulClose(ctx context.Context, funcs []Func) (int, []string) {
	var errs []string

	for i := len(funcs) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return i, errs
		default:
		}

		if err := funcs[i](ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return successIdx, errs
}

// forcedClose runs the remaining functions under a short deadline.
func (c *Closer) forcedClose(funcs []Func) []string {
	var errs []string

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for i := len(funcs) - 1; i >= 0; i-- {
		if err := funcs[i](ctx); err != nil {
			errs = append(errs, fmt.Sprintf("forced close: %s", err.Error()))
		}
	}

	return errs
}
