package scan

import (
	"context"
	"sync"
)

type slot struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

// Coordinator mantiene a lo sumo un escaneo en vuelo por clave.
// Un Begin nuevo cancela el anterior con causa ErrSuperseded.
type Coordinator struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]slot
}

func NewCoordinator() *Coordinator {
	return &Coordinator{inflight: map[string]slot{}}
}

// Begin registra un escaneo para key. done debe llamarse siempre al terminar.
func (c *Coordinator) Begin(ctx context.Context, key string) (context.Context, func()) {
	sctx, cancel := context.WithCancelCause(ctx)

	c.mu.Lock()
	if prev, ok := c.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	c.seq++
	mine := c.seq
	c.inflight[key] = slot{seq: mine, cancel: cancel}
	c.mu.Unlock()

	done := func() {
		c.mu.Lock()
		if cur, ok := c.inflight[key]; ok && cur.seq == mine {
			delete(c.inflight, key)
		}
		c.mu.Unlock()
		cancel(context.Canceled)
	}
	return sctx, done
}

// InFlight devuelve cuántas claves tienen un escaneo activo.
func (c *Coordinator) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight)
}

// Superseded indica si ctx fue cancelado por un escaneo más nuevo.
func Superseded(ctx context.Context) bool {
	return context.Cause(ctx) == ErrSuperseded
}
