package smtp

import (
	"context"
	"errors"
	"sync"

	"github.com/wneessen/go-mail"
)

// conn is one pool slot. The client is created lazily on first checkout and
// dialed on first use; dialed tracks whether the connection is established.
type conn struct {
	client *mail.Client
	dialed bool
}

// pool is a bounded set of reusable SMTP connections. A slot is checked out
// per send and returned on completion; a slot whose protocol exchange failed
// is closed and replaced with a fresh one.
type pool struct {
	slots   chan *conn
	factory func() (*mail.Client, error)
	mu      sync.Mutex
	closed  bool
}

var errPoolClosed = errors.New("smtp: connection pool is closed")

func newPool(size int, factory func() (*mail.Client, error)) *pool {
	p := &pool{
		slots:   make(chan *conn, size),
		factory: factory,
	}
	for range size {
		p.slots <- &conn{}
	}
	return p
}

// get checks out a slot, creating its client on first use. It blocks until
// a slot is free or the context is done.
func (p *pool) get(ctx context.Context) (*conn, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errPoolClosed
	}
	p.mu.Unlock()

	select {
	case c := <-p.slots:
		if c.client == nil {
			client, err := p.factory()
			if err != nil {
				p.slots <- &conn{}
				return nil, err
			}
			c.client = client
		}
		return c, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// put returns a healthy slot, keeping its connection open for reuse.
func (p *pool) put(c *conn) {
	p.slots <- c
}

// discard closes a failed slot's connection and frees its place in the pool.
func (p *pool) discard(c *conn) {
	if c.client != nil && c.dialed {
		_ = c.client.Close()
	}
	p.slots <- &conn{}
}

// close drains the pool, closing every open connection.
func (p *pool) close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	var errs []error
	for range cap(p.slots) {
		c := <-p.slots
		if c.client != nil && c.dialed {
			if err := c.client.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
