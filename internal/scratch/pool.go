// Package scratch provides pooled float64 planes for block evaluation.
//
// A Planes value holds a fixed number of equally sized slices carved from one
// backing array, so a vectorised kernel can borrow all of its temporaries with
// a single Get.
package scratch

import "sync"

// Planes is a set of equally sized float64 slices sharing one backing array.
type Planes struct {
	data   []float64
	planes [][]float64
}

// Plane returns the i-th plane.
func (p *Planes) Plane(i int) []float64 {
	return p.planes[i]
}

// Count returns the number of planes.
func (p *Planes) Count() int {
	return len(p.planes)
}

// Len returns the length of each plane.
func (p *Planes) Len() int {
	if len(p.planes) == 0 {
		return 0
	}
	return len(p.planes[0])
}

func (p *Planes) resize(count, n int) {
	if count < 0 {
		count = 0
	}
	if n < 0 {
		n = 0
	}

	need := count * n
	if cap(p.data) < need {
		p.data = make([]float64, need)
	} else {
		p.data = p.data[:need]
		for i := range p.data {
			p.data[i] = 0
		}
	}

	if cap(p.planes) < count {
		p.planes = make([][]float64, count)
	} else {
		p.planes = p.planes[:count]
	}
	for i := range p.planes {
		p.planes[i] = p.data[i*n : (i+1)*n : (i+1)*n]
	}
}

// Pool provides sync.Pool-based Planes reuse to reduce GC pressure when the
// same kernel runs repeatedly.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Planes{}
			},
		},
	}
}

// Get returns count zeroed planes of length n.
// Callers must return them via Put when done.
func (p *Pool) Get(count, n int) *Planes {
	pl := p.pool.Get().(*Planes)
	pl.resize(count, n)
	return pl
}

// Put returns planes to the pool for reuse.
// The caller must not use the planes after calling Put.
func (p *Pool) Put(pl *Planes) {
	if pl == nil {
		return
	}
	p.pool.Put(pl)
}
