package schema

import (
	"fmt"
	"reflect"
)

func Example_dealer() {
	var d dealer

	d.Needs(reflect.TypeFor[int](), settings{flavor: FlavorGraph})
	t, s, ok := d.NextNeeds()
	fmt.Println("int:", t, s.flavor, ok)

	_, _, ok = d.NextNeeds()
	fmt.Println("empty:", ok)

	d.Needs(reflect.TypeFor[int](), settings{})
	_, _, ok = d.NextNeeds()
	fmt.Println("no duplicates:", ok)

	d.Needs(reflect.TypeFor[string](), settings{})
	d.Needs(reflect.TypeFor[bool](), settings{})
	_, _, ok = d.NextNeeds()
	fmt.Println("some type:", ok)

	_, _, ok = d.NextNeeds()
	fmt.Println("another type:", ok)

	_, _, ok = d.NextNeeds()
	fmt.Println("no more types:", ok)

	// Output:
	// int: int graph true
	// empty: false
	// no duplicates: false
	// some type: true
	// another type: true
	// no more types: false
}
