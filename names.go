package driverfactory

import "strconv"

// resolveName returns name if no driver is registered under it, otherwise name
// followed by the smallest positive integer that is free.
func (f *Factory) resolveName(name string) string {
	if _, ok := f.definitions[name]; !ok {
		return name
	}
	for i := 1; ; i++ {
		n := name + strconv.Itoa(i)
		if _, ok := f.definitions[n]; !ok {
			return n
		}
	}
}
