package modetype

import "github.com/keithc-ca/taco/ir"

// ModePack groups the modes that share physically interleaved storage
// arrays, e.g. a coordinate-value pair stored as parallel arrays (spec.md
// §3). Modes are held by value; constructing a ModePack binds each mode's
// Pack/PackLoc back to the pack and its index within it.
type ModePack struct {
	modes []Mode
}

// NewModePack builds a ModePack from modes, in level order, and binds each
// mode's Pack and PackLoc fields to reflect membership.
func NewModePack(modes []Mode) *ModePack {
	mp := &ModePack{modes: modes}
	for i := range mp.modes {
		mp.modes[i].Pack = mp
		mp.modes[i].PackLoc = i
	}
	return mp
}

// Size returns the number of modes sharing this pack.
func (mp *ModePack) Size() int {
	return len(mp.modes)
}

// Mode returns the mode at packLoc within this pack.
func (mp *ModePack) Mode(packLoc int) *Mode {
	return &mp.modes[packLoc]
}

// GetArray answers "which array backs position i within this pack,"
// asking each member mode in turn and returning the first defined answer
// (mode_type.cpp's ModePack::getArray). Returns nil if no mode in the
// pack owns array slot i.
func (mp *ModePack) GetArray(i int) ir.Expr {
	for j := range mp.modes {
		m := &mp.modes[j]
		if arr := m.Type.getArray(i, m); arr != nil {
			return arr
		}
	}
	return nil
}
