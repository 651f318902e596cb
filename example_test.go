package huffman_test

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/huffpack"
)

func ExampleCodec() {
	c := huffman.New()
	packed, err := c.Compress("aabbbcc")
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", packed)

	text, err := c.Decompress(packed)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)

	_, _ = c.Table().Dump(os.Stdout)
	// Output:
	// 05 a1 e0
	// aabbbcc
	// Table{
	// 	MinSize() = 1
	// 	MaxSize() = 2
	// 	Encode(97) = "10"
	// 	Encode(98) = "0"
	// 	Encode(99) = "11"
	// }
}

func ExampleOpenSealed() {
	sealed, err := huffman.New().CompressSealed("hello, world")
	if err != nil {
		panic(err)
	}

	text, err := huffman.OpenSealed(sealed)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: hello, world
}
