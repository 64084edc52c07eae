package pinned

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/joshuapare/vmvec/internal/pagealign"
	"github.com/joshuapare/vmvec/vm"
)

// Vector is a dynamic array whose elements never move once inserted. It
// reserves address space for its maximum length up front and commits
// physical pages only as elements are added, so growth extends the
// committed suffix in place instead of reallocating.
//
// The maximum length is fixed at construction by a SizeSpec and never
// changes; exceeding it fails with ErrCapacityExceeded. The element type
// must not contain pointers (see ErrPointerElement).
//
// The zero value is a valid empty vector with maximum length zero. It
// performs no virtual-memory calls and cannot fail; it also cannot hold
// anything until replaced via MoveFrom, CloneFrom or Swap.
//
// A Vector is not safe for concurrent mutation. Concurrent readers are
// fine while no writer is active.
type Vector[T any] struct {
	res *vm.Reservation
	n   int // live elements, occupying slots [0, n)
}

// New reserves address space per spec and returns an empty vector.
// Nothing is committed until elements arrive.
func New[T any](spec SizeSpec) (*Vector[T], error) {
	return NewOn[T](vm.OS(), spec)
}

// NewOn is New against an explicit vm.System.
func NewOn[T any](sys vm.System, spec SizeSpec) (*Vector[T], error) {
	size, err := layout[T]()
	if err != nil {
		return nil, err
	}
	reserve, err := spec.reserveBytes(size, sys.PageSize())
	if err != nil {
		return nil, err
	}
	if reserve == 0 {
		return &Vector[T]{}, nil
	}
	res, err := vm.NewReservation(sys, reserve)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{res: res}, nil
}

// NewLen constructs a vector of n zero-valued elements, committing enough
// pages for all of them up front.
func NewLen[T any](spec SizeSpec, n int) (*Vector[T], error) {
	return NewLenOn[T](vm.OS(), spec, n)
}

// NewLenOn is NewLen against an explicit vm.System.
func NewLenOn[T any](sys vm.System, spec SizeSpec, n int) (*Vector[T], error) {
	var zero T
	return NewFilledOn(sys, spec, n, zero)
}

// NewFilled constructs a vector of n copies of value.
func NewFilled[T any](spec SizeSpec, n int, value T) (*Vector[T], error) {
	return NewFilledOn(vm.OS(), spec, n, value)
}

// NewFilledOn is NewFilled against an explicit vm.System.
func NewFilledOn[T any](sys vm.System, spec SizeSpec, n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidSize, n)
	}
	v, err := NewOn[T](sys, spec)
	if err != nil {
		return nil, err
	}
	if err := v.seed(n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		*v.slot(i) = value
	}
	v.n = n
	return v, nil
}

// NewFromSlice constructs a vector holding a copy of elems, committing
// exactly once up front since the count is known.
func NewFromSlice[T any](spec SizeSpec, elems []T) (*Vector[T], error) {
	return NewFromSliceOn(vm.OS(), spec, elems)
}

// NewFromSliceOn is NewFromSlice against an explicit vm.System.
func NewFromSliceOn[T any](sys vm.System, spec SizeSpec, elems []T) (*Vector[T], error) {
	v, err := NewOn[T](sys, spec)
	if err != nil {
		return nil, err
	}
	if err := v.seed(len(elems)); err != nil {
		return nil, err
	}
	copy(v.committed()[:len(elems)], elems)
	v.n = len(elems)
	return v, nil
}

// NewFromSeq constructs a vector from a single-pass sequence. The
// sequence is consumed exactly once; pages are committed incrementally as
// it yields. A sequence longer than the spec allows fails with
// ErrCapacityExceeded and releases everything acquired.
func NewFromSeq[T any](spec SizeSpec, seq iter.Seq[T]) (*Vector[T], error) {
	return NewFromSeqOn(vm.OS(), spec, seq)
}

// NewFromSeqOn is NewFromSeq against an explicit vm.System.
func NewFromSeqOn[T any](sys vm.System, spec SizeSpec, seq iter.Seq[T]) (*Vector[T], error) {
	v, err := NewOn[T](sys, spec)
	if err != nil {
		return nil, err
	}
	for x := range seq {
		if err := v.Append(x); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

// seed commits capacity for n elements on a freshly constructed vector,
// releasing the reservation on failure so no partial vector escapes.
func (v *Vector[T]) seed(n int) error {
	if n == 0 {
		return nil
	}
	if err := v.Reserve(n); err != nil {
		v.Close()
		return err
	}
	return nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of elements the committed region can hold.
func (v *Vector[T]) Cap() int {
	if v.res == nil {
		return 0
	}
	return v.res.CommittedBytes() / v.elemSize()
}

// MaxLen returns the ceiling fixed at construction: the number of
// elements the reserved address range can ever hold.
func (v *Vector[T]) MaxLen() int {
	if v.res == nil {
		return 0
	}
	return v.res.ReservedBytes() / v.elemSize()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.n == 0
}

// PageSize returns the page size used for this vector's rounding.
func (v *Vector[T]) PageSize() int {
	if v.res == nil {
		return vm.OS().PageSize()
	}
	return v.res.PageSize()
}

// At returns a pointer to element i. The pointer stays valid for the life
// of the vector no matter how much it grows; it is invalidated only by
// Insert/Remove shifting the suffix, by Close, or by the vector's memory
// changing identity through Swap/MoveFrom. Panics when i is out of range.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("pinned: index %d out of range [0:%d)", i, v.n))
	}
	return v.slot(i)
}

// Get returns element i by value. Panics when i is out of range.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set overwrites element i. Panics when i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	*v.At(i) = x
}

// Front returns a pointer to the first element. Panics when empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element. Panics when empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.n - 1)
}

// Data returns the live elements as a slice aliasing the vector's memory.
// Because elements never relocate, the slice remains valid as the vector
// grows; Append beyond the current length is not reflected in its length.
func (v *Vector[T]) Data() []T {
	if v.n == 0 {
		return nil
	}
	return v.committed()[:v.n]
}

// All iterates index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, *v.slot(i)) {
				return
			}
		}
	}
}

// Append adds vals at the end, committing more pages when the committed
// region is full. Committed capacity grows geometrically (doubling,
// clamped to the reservation) to amortize commit syscalls. On failure the
// vector is untouched.
func (v *Vector[T]) Append(vals ...T) error {
	if len(vals) == 0 {
		return nil
	}
	if err := v.ensure(v.n + len(vals)); err != nil {
		return err
	}
	copy(v.committed()[v.n:v.n+len(vals)], vals)
	v.n += len(vals)
	return nil
}

// Insert places vals before position i, shifting the suffix up. Element
// addresses at and above i change; addresses below i do not. Panics when
// i is outside [0, Len()].
func (v *Vector[T]) Insert(i int, vals ...T) error {
	if i < 0 || i > v.n {
		panic(fmt.Sprintf("pinned: insert at %d out of range [0:%d]", i, v.n))
	}
	if len(vals) == 0 {
		return nil
	}
	if err := v.ensure(v.n + len(vals)); err != nil {
		return err
	}
	s := v.committed()
	copy(s[i+len(vals):v.n+len(vals)], s[i:v.n])
	copy(s[i:i+len(vals)], vals)
	v.n += len(vals)
	return nil
}

// Remove deletes element i and returns it, shifting the suffix down.
// Panics when i is out of range.
func (v *Vector[T]) Remove(i int) T {
	x := *v.At(i)
	s := v.committed()
	copy(s[i:v.n-1], s[i+1:v.n])
	v.n--
	return x
}

// PopBack removes and returns the last element. Panics when empty.
func (v *Vector[T]) PopBack() T {
	x := *v.Back()
	v.n--
	return x
}

// Resize sets the length to n, zeroing any newly exposed slots. Growing
// past MaxLen fails with ErrCapacityExceeded; shrinking never fails and
// keeps the pages committed (use ShrinkToFit to return them).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidSize, n)
	}
	if n <= v.n {
		v.n = n
		return nil
	}
	if err := v.ensure(n); err != nil {
		return err
	}
	var zero T
	s := v.committed()
	for i := v.n; i < n; i++ {
		s[i] = zero
	}
	v.n = n
	return nil
}

// Truncate drops elements past n. No-op when n >= Len().
func (v *Vector[T]) Truncate(n int) {
	if n >= 0 && n < v.n {
		v.n = n
	}
}

// Clear drops all elements, keeping committed capacity for reuse.
func (v *Vector[T]) Clear() {
	v.n = 0
}

// Reserve commits capacity for at least n elements ahead of use, rounded
// up to whole pages. It never grows past MaxLen.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if n > v.MaxLen() {
		return fmt.Errorf("%w: reserve %d of max %d", ErrCapacityExceeded, n, v.MaxLen())
	}
	return v.res.GrowTo(n * v.elemSize())
}

// ShrinkToFit decommits pages beyond those needed for the current
// elements. Addresses of live elements are unaffected.
func (v *Vector[T]) ShrinkToFit() {
	if v.res == nil {
		return
	}
	v.res.ShrinkTo(pagealign.Up(v.n*v.elemSize(), v.res.PageSize()))
}

// Assign replaces the contents with vals, reusing the reservation. More
// values than MaxLen fails with ErrCapacityExceeded before anything is
// touched; the prior contents survive any failure.
func (v *Vector[T]) Assign(vals ...T) error {
	if len(vals) > v.MaxLen() {
		return fmt.Errorf("%w: assign %d of max %d", ErrCapacityExceeded, len(vals), v.MaxLen())
	}
	if err := v.ensure(len(vals)); err != nil {
		return err
	}
	copy(v.committed()[:len(vals)], vals)
	v.n = len(vals)
	return nil
}

// AssignSeq replaces the contents from a single-pass sequence. The
// sequence is buffered through the heap first so that an over-long
// sequence fails with ErrCapacityExceeded while the prior contents are
// still intact.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	max := v.MaxLen()
	buf := make([]T, 0, min(max, 64))
	for x := range seq {
		if len(buf) == max {
			return fmt.Errorf("%w: sequence longer than max %d", ErrCapacityExceeded, max)
		}
		buf = append(buf, x)
	}
	return v.Assign(buf...)
}

// Clone returns an independent deep copy with its own reservation, sized
// to the same maximum length. Nothing is observable on failure.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.res == nil {
		return &Vector[T]{}, nil
	}
	out, err := NewOn[T](v.res.System(), Bytes(v.res.ReservedBytes()))
	if err != nil {
		return nil, err
	}
	if err := out.seed(v.n); err != nil {
		return nil, err
	}
	copy(out.committed()[:v.n], v.committed()[:v.n])
	out.n = v.n
	return out, nil
}

// CloneFrom replaces the contents with a deep copy of src, acquiring a
// fresh reservation sized to src's maximum length. On failure the
// destination keeps its previous state.
func (v *Vector[T]) CloneFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	v.MoveFrom(tmp)
	return nil
}

// Move transfers the reservation and contents into a fresh vector in
// constant time and cannot fail. The receiver is left empty with maximum
// length zero; element addresses carry over to the returned vector.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{res: v.res, n: v.n}
	v.res, v.n = nil, 0
	return out
}

// MoveFrom releases the receiver's current reservation and takes over
// src's in constant time. src is left empty. Cannot fail; a release
// error from the OS is ignored the same way Close ignores it on exit
// paths that must not fail.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	_ = v.res.Release()
	v.res, v.n = src.res, src.n
	src.res, src.n = nil, 0
}

// Swap exchanges the entire state of two vectors in constant time: the
// reservations (hence base addresses and committed lengths) and the
// lengths. Previously obtained element pointers now address the other
// vector's contents.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.res, o.res = o.res, v.res
	v.n, o.n = o.n, v.n
}

// Close releases the reservation. The vector becomes the empty zero-max
// state; Close is idempotent and safe on the zero value.
func (v *Vector[T]) Close() error {
	res := v.res
	v.res, v.n = nil, 0
	return res.Release()
}

// ensure commits capacity for n elements, doubling the committed region
// (clamped to the reservation) so repeated appends trigger O(log n)
// commit syscalls. Fails with ErrCapacityExceeded past MaxLen and leaves
// all state unchanged on any failure.
func (v *Vector[T]) ensure(n int) error {
	if n > v.MaxLen() {
		return fmt.Errorf("%w: need %d of max %d", ErrCapacityExceeded, n, v.MaxLen())
	}
	need := n * v.elemSize()
	if need <= v.res.CommittedBytes() {
		return nil
	}
	target := v.res.CommittedBytes() * 2
	if target < need {
		target = need
	}
	if target > v.res.ReservedBytes() {
		target = v.res.ReservedBytes()
	}
	return v.res.GrowTo(target)
}

// committed views the committed region as elements. Valid until the
// reservation is released.
func (v *Vector[T]) committed() []T {
	base := v.res.Base()
	if base == nil {
		return nil
	}
	return unsafe.Slice((*T)(base), v.res.CommittedBytes()/v.elemSize())
}

func (v *Vector[T]) slot(i int) *T {
	return (*T)(unsafe.Add(v.res.Base(), uintptr(i)*unsafe.Sizeof(*new(T))))
}

func (v *Vector[T]) elemSize() int {
	return int(unsafe.Sizeof(*new(T)))
}
