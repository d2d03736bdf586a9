package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ContactsData is the set of entity pairs currently in contact.
// A pair produces a collision event only on the frame it enters the set.
type ContactsData struct {
	Active map[gamemath.PairKey]struct{}
}

var Contacts = donburi.NewComponentType[ContactsData]()

// Begin records a contact and reports whether it is new.
func (c *ContactsData) Begin(key gamemath.PairKey) bool {
	if c.Active == nil {
		c.Active = make(map[gamemath.PairKey]struct{})
	}
	if _, ok := c.Active[key]; ok {
		return false
	}
	c.Active[key] = struct{}{}
	return true
}

func (c *ContactsData) End(key gamemath.PairKey) {
	delete(c.Active, key)
}

func (c *ContactsData) IsActive(key gamemath.PairKey) bool {
	_, ok := c.Active[key]
	return ok
}

func (c *ContactsData) Clear() {
	for k := range c.Active {
		delete(c.Active, k)
	}
}

// Len returns the number of active pairs.
func (c *ContactsData) Len() int {
	return len(c.Active)
}
