package errors

import (
	"errors"
	"sync"
)

// Collector gathers errors from independent steps so a caller can report
// all of them at once, for example every invalid setting in a config file.
type Collector struct {
	errs  []error
	mutex sync.RWMutex
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{errs: make([]error, 0)}
}

// Add records err. Nil errors are ignored.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errs = append(c.errs, err)
}

// Errors returns a copy of the collected errors.
func (c *Collector) Errors() []error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]error, len(c.errs))
	copy(result, c.errs)
	return result
}

// HasErrors returns true if there are any errors.
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.errs) > 0
}

// Err joins the collected errors into a single validation error, or returns
// nil when nothing was collected.
func (c *Collector) Err(code, message string) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if len(c.errs) == 0 {
		return nil
	}
	e := NewValidationError(code, message)
	e.Cause = errors.Join(c.errs...)
	return e
}
