// Package alloc provides the pluggable allocation strategies behind
// growbuf containers.
//
// # Overview
//
// A growbuf.Buffer never touches memory directly: every slot it owns is
// acquired, initialized, torn down, and released through an Allocator.
// This package defines that contract and ships the storage strategies:
//
//   - HeapAllocator: Go runtime backed, release is left to the collector
//   - ArenaAllocator: carves slots out of a chunked bump Arena
//   - MmapAllocator: one anonymous private mapping per allocation (unix)
//   - LimitAllocator: slot-budget wrapper surfacing ErrOutOfMemory
//   - CountingAllocator: call-accounting wrapper for leak verification
//
// # The Allocator Contract
//
// Allocate hands out raw slots; nothing may be read from a slot until
// Construct has initialized it. Destroy tears a live slot back down to
// raw. Deallocate releases a prior Allocate result wholesale. Allocation
// failure is reported as ErrOutOfMemory; callers test for it with
// errors.Is.
//
// # Choosing a Strategy
//
//	// No placement preference:
//	a := alloc.Default[int]()
//
//	// Many short-lived buffers dropped at once:
//	ar := alloc.NewArena(0)
//	defer ar.Release()
//	a := alloc.NewArenaAllocator[int](ar)
//
//	// Very large buffers that should return to the OS immediately:
//	m := alloc.NewMmap[int]()
//	defer m.Close()
//
// # Pointer-Bearing Elements
//
// Arena chunks and anonymous mappings are untyped memory; the collector
// does not trace pointers stored there. Element types containing pointers
// should use HeapAllocator unless their referents are kept reachable some
// other way.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
