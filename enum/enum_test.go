package enum_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/enum"
)

type color int

const (
	red color = iota + 1
	green
	blue
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case green:
		return "Green"
	case blue:
		return "Blue"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

type shape string

func (s shape) String() string { return string(s) }

func init() {
	enum.Register(red, green, blue)
	enum.Register[shape]("Circle", "Square")
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  color
		ok    bool
	}{
		{"Red", red, true},
		{"green", green, true},
		{"BLUE", blue, true},
		{" blue ", blue, true},
		{"purple", 0, false},
		{"2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := enum.Parse(reflect.TypeFor[color](), tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Interface())
			}
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Green", enum.Name(reflect.ValueOf(green)))
	assert.Equal(t, "color(9)", enum.Name(reflect.ValueOf(color(9))))
	assert.Equal(t, "Square", enum.Name(reflect.ValueOf(shape("Square"))))
	assert.Equal(t, "7", enum.Name(reflect.ValueOf(7)))
}

func TestIsEnum(t *testing.T) {
	assert.True(t, enum.IsEnum(reflect.TypeFor[color]()))
	assert.True(t, enum.IsEnum(reflect.TypeFor[shape]()))
	assert.False(t, enum.IsEnum(reflect.TypeFor[int]()))
}

func TestNames(t *testing.T) {
	enum.Register(red) // re-registering keeps the order

	assert.Equal(t, []string{"Red", "Green", "Blue"}, enum.Names(reflect.TypeFor[color]()))
	assert.Nil(t, enum.Names(reflect.TypeFor[int]()))
}

func ExampleParseAs() {
	s, err := enum.ParseAs[shape]("circle")
	fmt.Println(s, err)

	_, err = enum.ParseAs[shape]("triangle")
	fmt.Println(err)
	// Output:
	// Circle <nil>
	// "triangle" is not a enum_test.shape
}
