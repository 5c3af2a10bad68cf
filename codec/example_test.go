package codec_test

import (
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"record-mapper/codec"
	"record-mapper/convention"
	"record-mapper/schema"
)

func ExampleCodec_Encode() {
	type shipment struct {
		Id       string
		Z        int
		W        *int
		Priority priority
	}

	c := codec.Must(codec.New[shipment](schema.WithConvention(convention.PascalCase)))

	m, err := c.Encode(shipment{Id: "Hi", Z: 2, Priority: high})
	if err != nil {
		panic(err)
	}

	for _, k := range m.Keys() {
		fmt.Printf("%s=%v\n", k, m[k])
	}

	// Output:
	// Id=Hi
	// Priority=High
	// Z=2
}

func ExampleCodec_Decode() {
	type shift struct {
		Name  string
		Start time.Duration
	}

	c := codec.Must(codec.New[shift](schema.WithFlavor(schema.FlavorGraph)))

	s, err := c.Decode(map[string]any{
		"name":  "night",
		"START": dbtype.LocalTime(time.Date(0, 1, 1, 23, 0, 12, 0, time.UTC)),
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Name, s.Start)

	// Output:
	// night 23h0m12s
}

func ExampleMissingFieldError() {
	type user struct {
		Email string
	}

	_, err := codec.Must(codec.New[user]()).Decode(map[string]any{"emial": "a@b.c"})
	fmt.Println(err)

	// Output:
	// missing required field Email (tried keys: Email, email, EMAIL); did you mean emial?
}
