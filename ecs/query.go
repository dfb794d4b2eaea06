package ecs

import "github.com/milk9111/dogrunner/ecs/component"

// Query returns the entities carrying every listed component, iterating the
// smallest store.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(ids))
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok || s.Len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.Entities() {
		match := true
		for _, s := range stores {
			if !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}
