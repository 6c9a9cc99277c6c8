package weave

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stepweave/parameter"
)

// NoticeKind tags a batch lifecycle notification.
type NoticeKind uint8

const (
	// NoticeStarted marks background generation beginning for a batch.
	// Result is nil.
	NoticeStarted NoticeKind = iota
	// NoticeDone carries the finished batch result, failed regions and all.
	NoticeDone
)

// Notice is one batch lifecycle notification.
type Notice struct {
	Kind   NoticeKind
	Label  string
	Result *Result
	When   time.Time
}

// Notifier is a lock-free MPSC ring carrying notices from background
// generation to the editor thread.
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (editor thread)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest notices are overwritten when full.
type Notifier struct {
	slots     [parameter.NotifyRingSize]Notice
	published [parameter.NotifyRingSize]atomic.Bool // true = slot fully written
	head      atomic.Uint64                         // read index
	tail      atomic.Uint64                         // write index
}

// NewNotifier creates an empty ring.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Push adds a notice using lock-free CAS with the published-flag pattern.
// Safe for concurrent producers. O(1) amortized.
func (nf *Notifier) Push(n Notice) {
	for {
		currentTail := nf.tail.Load()
		nextTail := currentTail + 1

		if nf.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.NotifyRingMask

			nf.slots[idx] = n
			nf.published[idx].Store(true) // MUST follow the slot write

			// Advance head if overwriting unread notices
			currentHead := nf.head.Load()
			if nextTail-currentHead > parameter.NotifyRingSize {
				nf.head.CompareAndSwap(currentHead, nextTail-parameter.NotifyRingSize)
			}
			return
		}
	}
}

// Consume returns all pending notices in FIFO order and advances the read
// index. Single-consumer design; checks published flags so a slot being
// written concurrently is left for the next drain.
func (nf *Notifier) Consume() []Notice {
	for {
		currentHead := nf.head.Load()
		currentTail := nf.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.NotifyRingSize {
			maxAvailable = parameter.NotifyRingSize
			currentHead = currentTail - parameter.NotifyRingSize
		}

		result := make([]Notice, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.NotifyRingMask

			if !nf.published[idx].Load() {
				break // writer incomplete
			}

			result = append(result, nf.slots[idx])
			nf.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if nf.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
