package growbuf

import "github.com/joshuapare/growkit/growbuf/alloc"

// Composite is implemented by element types whose teardown must recurse
// into their members before the slot itself is destroyed. Defined
// fixed-size array types and aggregates owning nested resources implement
// it on the pointer receiver:
//
//	type handles [4]*resource
//
//	func (h *handles) DestroyElements() {
//		for _, r := range *h {
//			r.close()
//		}
//	}
//
// Plain element types need no implementation; they get the scalar
// teardown path.
type Composite interface {
	// DestroyElements tears down the element's members in order.
	DestroyElements()
}

// destroyStrategy tears down a run of live slots through the allocator.
type destroyStrategy[T any] func(a alloc.Allocator[T], live []T)

// destroyerFor selects the teardown strategy for T. The choice is a
// property of the element type, made once per instantiation: composite
// elements are recursed into member by member, everything else gets one
// allocator Destroy per slot.
func destroyerFor[T any]() destroyStrategy[T] {
	if _, ok := any((*T)(nil)).(Composite); ok {
		return destroyComposite[T]
	}
	return destroyScalar[T]
}

func destroyScalar[T any](a alloc.Allocator[T], live []T) {
	for i := range live {
		a.Destroy(&live[i])
	}
}

func destroyComposite[T any](a alloc.Allocator[T], live []T) {
	for i := range live {
		any(&live[i]).(Composite).DestroyElements()
		a.Destroy(&live[i])
	}
}
