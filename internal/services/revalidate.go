package services

import (
	"sync/atomic"
	"time"
)

// Revalidator tracks the site content epoch. The webhook bumps it after CMS
// publishes; rendered pages carry the epoch as a cache-busting version so
// downstream caches re-fetch everything.
type Revalidator struct {
	epoch atomic.Int64
	last  atomic.Int64 // unix seconds of the latest bump
}

func NewRevalidator() *Revalidator {
	r := &Revalidator{}
	r.last.Store(time.Now().Unix())
	return r
}

func (r *Revalidator) Bump() int64 {
	r.last.Store(time.Now().Unix())
	return r.epoch.Add(1)
}

func (r *Revalidator) Epoch() int64 { return r.epoch.Load() }

func (r *Revalidator) LastBump() time.Time { return time.Unix(r.last.Load(), 0) }
