package internal

// Heap is the dirty queue for effects, bucketed by height. Draining from the
// lowest occupied bucket upward runs effects in topological order, so an
// effect never runs before the effects feeding the signals it reads.
type Heap struct {
	min  int
	max  int
	size int

	buckets []*Effect // [height]head of a circular list (head.heapPrev is the tail)
}

func NewHeap() *Heap {
	return &Heap{
		buckets: make([]*Effect, 64),
	}
}

func (h *Heap) Empty() bool {
	return h.size == 0
}

func (h *Heap) Insert(e *Effect) {
	n := e.base()
	if n.flags.Has(FlagInHeap) {
		return
	}
	n.flags.Set(FlagInHeap)

	height := n.height
	e.heapHeight = height
	for len(h.buckets) <= height {
		h.buckets = append(h.buckets, nil)
	}

	if h.buckets[height] == nil {
		h.buckets[height] = e
		e.heapPrev = e // loop to self
		e.heapNext = nil
	} else {
		head := h.buckets[height]
		tail := head.heapPrev

		tail.heapNext = e
		e.heapPrev = tail
		e.heapNext = nil
		head.heapPrev = e
	}

	if height > h.max {
		h.max = height
	}
	if height < h.min {
		h.min = height
	}
	h.size++
}

func (h *Heap) Remove(e *Effect) {
	n := e.base()
	if !n.flags.Has(FlagInHeap) {
		return
	}
	n.flags.Clear(FlagInHeap)
	h.size--

	height := e.heapHeight

	if e.heapPrev == e {
		// only node at this height
		h.buckets[height] = nil
	} else {
		if e == h.buckets[height] {
			h.buckets[height] = e.heapNext
		} else {
			e.heapPrev.heapNext = e.heapNext
		}

		if e.heapNext != nil {
			e.heapNext.heapPrev = e.heapPrev
		} else if head := h.buckets[height]; head != nil {
			// removed the tail, fix head's loop pointer
			head.heapPrev = e.heapPrev
		}
	}

	e.heapNext = nil
	e.heapPrev = e
}

// Pop removes and returns the lowest-height queued effect, or nil when empty.
// Insert keeps min pointing at or below the lowest occupied bucket, so the
// scan stays correct even when effects queue more work mid-drain.
func (h *Heap) Pop() *Effect {
	if h.size == 0 {
		return nil
	}

	for h.buckets[h.min] == nil {
		h.min++
	}

	e := h.buckets[h.min]
	h.Remove(e)
	return e
}
