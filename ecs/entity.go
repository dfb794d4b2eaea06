package ecs

import "strconv"

// Entity is a generational handle. A handle whose slot has been recycled is
// no longer alive even though its ID is in use again.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + ":" + strconv.Itoa(e.Gen)
}
