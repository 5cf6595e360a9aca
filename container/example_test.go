package container_test

import (
	"fmt"
	"log"

	"github.com/rimecraft-rs/rimecraft-sub000/container"
	"github.com/rimecraft-rs/rimecraft-sub000/provider"
	"github.com/rimecraft-rs/rimecraft-sub000/registry"
)

func blocks() *registry.Registry[string] {
	reg := registry.New[string]()
	for _, name := range []string{"air", "stone", "dirt", "grass"} {
		reg.MustRegister("minecraft:"+name, name)
	}
	reg.Freeze()

	return reg
}

// ExampleOfSingle shows a uniform container upgrading on its first
// distinct value.
func ExampleOfSingle() {
	c, err := container.OfSingle(blocks(), provider.BlockStates, "air")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Len(), c.Config())

	c.SetAt(1, 0, 0, "stone")
	fmt.Println(c.Config())

	c.Count(func(v string, n int) {
		fmt.Printf("%s: %d\n", v, n)
	})

	// Output:
	// 4096 Singular/0
	// Linear/4
	// air: 4095
	// stone: 1
}

// ExampleContainer_MarshalBinary shows the binary layout of a small
// two-value container.
func ExampleContainer_MarshalBinary() {
	reg := blocks()
	c, err := container.OfSingle(reg, provider.Biomes, "air")
	if err != nil {
		log.Fatal(err)
	}
	c.Set(1, "stone")

	data, err := c.MarshalBinary()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", data)

	restored, _ := container.OfSingle(reg, provider.Biomes, "dirt")
	if err := restored.UnmarshalBinary(data); err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Config(), restored.Get(0), restored.Get(1))

	// Output:
	// 01020001010000000000000002
	// Linear/1 air stone
}

// ExampleContainer_MarshalJSON shows the human-readable form.
func ExampleContainer_MarshalJSON() {
	c, err := container.OfSingle(blocks(), provider.Biomes, "air")
	if err != nil {
		log.Fatal(err)
	}
	c.Set(1, "stone")
	c.Set(2, "grass")
	c.Set(2, "air")

	data, err := c.MarshalJSON()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	fmt.Println(c.PaletteValues())
	fmt.Println(c.Cells("stone").ToArray())

	// Output:
	// {"palette":["air","stone"],"data":[2]}
	// [air stone grass]
	// [1]
}
