package ecs

import "github.com/milk9111/dogrunner/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if existing, ok := w.stores[kind.ID()]; ok {
		set, _ := existing.(*SparseSet[T])
		return set
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	set := &SparseSet[T]{}
	w.stores[kind.ID()] = set
	return set
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	if !IsAlive(w, e) {
		return ErrEntityNotAlive
	}
	storeFor(w, kind, true).Set(e.ID, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	set := storeFor(w, kind, false)
	if !set.Has(e.ID) {
		return false
	}
	set.Remove(e.ID)
	return true
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && storeFor(w, kind, false).Has(e.ID)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := storeFor(w, kind, false).Get(e.ID)
	return v, v != nil
}

// Count returns how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).Len()
}

// First returns any entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	set := storeFor(w, kind, false)
	for _, id := range set.Entities() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return Entity{}, false
}

// ForEach visits every entity carrying kind. It iterates over a snapshot, so fn
// may destroy entities; ones destroyed before their turn are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := storeFor(w, kind, false)
	if set.Len() == 0 {
		return
	}
	ids := append([]int(nil), set.Entities()...)
	for _, id := range ids {
		v := set.Get(id)
		if v == nil {
			continue
		}
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := storeFor(w, kb, false)
	ForEach(w, ka, func(e Entity, a *A) {
		if b := sb.Get(e.ID); b != nil {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	ForEach(w, ka, func(e Entity, a *A) {
		b := sb.Get(e.ID)
		c := sc.Get(e.ID)
		if b != nil && c != nil {
			fn(e, a, b, c)
		}
	})
}
