package logger

import (
	"runtime"
	"sync/atomic"
)

// seqSlot is a per-slot sequence number on its own cacheline so the
// producer/consumer handshake on one slot never contends with its
// neighbours or with the ring counters.
type seqSlot struct {
	v atomic.Uint64
	_ [CacheLineSize - 8]byte
}

// Ring is a bounded lock-free MPSC ring buffer of Slots.
//
// Coordination is by per-slot sequence numbers: a producer holding
// ticket t may write slot t&mask when seq == t, publishes with
// seq = t+1, and the consumer recycles with seq = t+N. Any number of
// goroutines may call Push/TryPush; exactly one goroutine may call
// TryPop.
type Ring struct {
	mask uint64
	size uint64
	_    [CacheLineSize - 16]byte
	wc   atomic.Uint64 // write counter, producers only
	_    [CacheLineSize - 8]byte
	rc   atomic.Uint64 // read counter, consumer only
	_    [CacheLineSize - 8]byte
	slots []Slot
	seq   []seqSlot
}

// NewRing creates a ring with the given capacity. Capacity must be a
// power of two; index folding relies on it.
func NewRing(size int) *Ring {
	if size <= 0 || size&(size-1) != 0 {
		panic("logger: ring size must be a power of two")
	}

	r := &Ring{
		mask:  uint64(size - 1),
		size:  uint64(size),
		slots: make([]Slot, size),
		seq:   make([]seqSlot, size),
	}
	for i := range r.seq {
		r.seq[i].v.Store(uint64(i))
	}
	return r
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return int(r.size) }

// Len returns the number of records currently queued. Racy by nature;
// exact only when producers and consumer are quiescent.
func (r *Ring) Len() int { return int(r.wc.Load() - r.rc.Load()) }

// Push enqueues a copy of s, blocking (bounded busy-wait) while the
// slot from the previous generation is still unread. Admission is in
// strict ticket order.
func (r *Ring) Push(s *Slot) {
	t := r.wc.Add(1) - 1
	i := t & r.mask
	sq := &r.seq[i]

	// Admission gate: wait for the consumer to recycle the slot.
	for spins := 0; sq.v.Load() != t; spins++ {
		if spins > 64 {
			runtime.Gosched()
		}
	}

	r.slots[i] = *s
	sq.v.Store(t + 1)
}

// TryPush enqueues a copy of s, or returns false when the ring is
// full. Unlike Push it claims its ticket by CAS so a full ring costs
// no ticket.
func (r *Ring) TryPush(s *Slot) bool {
	for {
		t := r.wc.Load()
		i := t & r.mask
		seq := r.seq[i].v.Load()
		if seq == t {
			if r.wc.CompareAndSwap(t, t+1) {
				r.slots[i] = *s
				r.seq[i].v.Store(t + 1)
				return true
			}
			continue
		}
		if seq < t {
			// Previous generation still unread: full.
			return false
		}
		// seq > t: another producer claimed the ticket first; reload.
	}
}

// TryPop copies the oldest record into out and returns true, or
// returns false when the ring is empty or the next record is not yet
// published. Single consumer only.
func (r *Ring) TryPop(out *Slot) bool {
	t := r.rc.Load()
	i := t & r.mask
	if r.seq[i].v.Load() != t+1 {
		return false
	}

	*out = r.slots[i]
	r.seq[i].v.Store(t + r.size)
	r.rc.Store(t + 1)
	return true
}
