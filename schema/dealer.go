package schema

import "reflect"

// dealer is the worklist of record types still to be built. A type is handed
// out once; asking for it again after that is a no-op, which is what ends
// self-referencing records.
type dealer struct {
	needs map[reflect.Type]settings
	done  map[reflect.Type]struct{}
}

func (d *dealer) NextNeeds() (t reflect.Type, inherited settings, ok bool) {
	if len(d.needs) == 0 {
		return
	}

	for needed, s := range d.needs {
		delete(d.needs, needed)

		if _, exists := d.done[needed]; !exists {
			d.Done(needed)

			return needed, s, true
		}
	}

	return
}

func (d *dealer) Needs(t reflect.Type, inherited settings) {
	if d.needs == nil {
		d.needs = make(map[reflect.Type]settings)
	}

	if _, exists := d.done[t]; exists {
		return
	}

	if _, queued := d.needs[t]; !queued {
		d.needs[t] = inherited
	}
}

func (d *dealer) Done(t reflect.Type) {
	if d.done == nil {
		d.done = make(map[reflect.Type]struct{})
	}

	delete(d.needs, t)
	d.done[t] = struct{}{}
}
