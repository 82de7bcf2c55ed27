package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fstring"
	"github.com/rawbytedev/fstring/pkg/numconv"
	"github.com/rawbytedev/fstring/pkg/textops"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	// Hammer the mutation and derived surface; everything below should be
	// allocation-free at steady state.
	var line fstring.Str64
	for i := 0; i < 10000; i++ {
		line.Clear()
		line.AppendString("  request ")
		id := numconv.FormatInt[[21]byte](int64(i), 16)
		line.Append(id.Units()...)
		line.AppendString(" done  ")

		trimmed := textops.Trim(&line)
		upper := textops.ToUpper(&trimmed)
		if upper.IndexUnit(' ') < 0 {
			log.Fatal("unexpected content")
		}
		_ = upper.Hash()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
