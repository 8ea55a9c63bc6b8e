package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/bitseq"
)

func main() {
	fmt.Println("--- Fixed-length sequence ---")

	s := bitseq.New[uint64](128)
	s.SetRange(10, 50)
	s.FlipStride(0, 128, 7)

	fmt.Println("Length:", s.Len())
	fmt.Println("Blocks:", s.BlockCount())
	fmt.Println("Count:", s.Count())

	if i, ok := s.NextSet(0); ok {
		fmt.Println("First set bit:", i)
	}

	fmt.Println("\n--- Growable sequence ---")

	logger := bitseq.NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	d := bitseq.NewDynamic[uint64](bitseq.WithLogger(logger))

	size := 10_000_000

	start := time.Now()
	for i := 0; i < size; i++ {
		d.PushBack(i%3 == 0)
	}
	elapsed := time.Since(start)

	fmt.Println("Pushed bits:", d.Len())
	fmt.Println("Set bits:", d.Count())
	fmt.Println("Capacity bits:", d.Capacity())
	fmt.Printf("Seconds: %.2f\n", elapsed.Seconds())

	fmt.Println("\n--- Conversion ---")

	v := bitseq.FromInteger[uint8](32, uint32(0xCAFEBABE))
	fmt.Println("Bits:", v.String())
	fmt.Printf("Back: %#x\n", bitseq.ToInteger[uint32](v))

	rb := bitseq.ToRoaring(s)
	fmt.Println("Roaring cardinality:", rb.GetCardinality())
}
