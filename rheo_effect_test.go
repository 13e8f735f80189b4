package rheo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs on signal change with cleanup", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		log = append(log, fmt.Sprintf("%d", count.Read()))

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)
		log = append(log, fmt.Sprintf("%d", count.Read()))
		count.Write(20)

		assert.Equal(t, []string{
			"0",
			"changed 0",
			"cleanup",
			"changed 10",
			"10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("reruns exactly once per write", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		NewEffect(func() {
			count.Read()
			runs++
		})

		count.Write(1)
		assert.Equal(t, 2, runs)

		count.Write(2)
		assert.Equal(t, 3, runs)
	})

	t.Run("ignores signals it never read", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)
		other := NewSignal(0)

		NewEffect(func() {
			count.Read()
			runs++
		})

		other.Write(10)
		assert.Equal(t, 1, runs)
	})

	t.Run("writes to another signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		double := NewSignal(0)

		NewEffect(func() {
			double.Write(count.Read() * 2)
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", double.Read()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("nested effects", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			count.Read()
			log = append(log, "running")

			NewEffect(func() {
				log = append(log, "running nested")

				OnCleanup(func() {
					log = append(log, "cleanup nested")
				})
			})

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"running",
			"running nested",
			"cleanup nested",
			"cleanup",
			"running",
			"running nested",
		}, log)
	})

	t.Run("diamond dependency", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		double := NewComputed(func() int { return count.Read() * 2 })
		quad := NewComputed(func() int { return count.Read() * 4 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("running %d %d", double.Read(), quad.Read()))

			OnCleanup(func() {
				log = append(log, fmt.Sprintf("cleanup %d %d", double.Read(), quad.Read()))
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"running 0 0",
			"cleanup 20 40",
			"running 20 40",
		}, log)
	})

	t.Run("diamond observes consistent values", func(t *testing.T) {
		pairs := [][2]int{}

		count := NewSignal(1)
		double := NewComputed(func() int { return count.Read() * 2 })
		triple := NewComputed(func() int { return count.Read() * 3 })

		NewEffect(func() {
			pairs = append(pairs, [2]int{double.Read(), triple.Read()})
		})

		count.Write(10)

		// a single write yields a single rerun, never a half-propagated pair
		assert.Equal(t, [][2]int{
			{2, 3},
			{20, 30},
		}, pairs)
	})

	t.Run("stops tracking branches no longer taken", func(t *testing.T) {
		runs := 0

		cond := NewSignal(true)
		left := NewSignal("a")
		right := NewSignal("b")

		NewEffect(func() {
			runs++
			if cond.Read() {
				left.Read()
			} else {
				right.Read()
			}
		})
		assert.Equal(t, 1, runs)

		// not read during the last run
		right.Write("bb")
		assert.Equal(t, 1, runs)

		cond.Write(false)
		assert.Equal(t, 2, runs)

		// the branch switched, left must stop notifying
		left.Write("aa")
		assert.Equal(t, 2, runs)

		right.Write("bbb")
		assert.Equal(t, 3, runs)
	})

	t.Run("dispose stops reruns", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		effect := NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)
		effect.Dispose()
		count.Write(20)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 10",
			"cleanup",
		}, log)
	})

	t.Run("dispose function from CreateEffect", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		dispose := CreateEffect(func() {
			count.Read()
			runs++
		})

		count.Write(10)
		dispose()
		count.Write(20)

		assert.Equal(t, 2, runs)
	})
}
