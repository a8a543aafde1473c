// xattrbench times extended attribute operations against a file.
//  -n <count>  number of set/get/remove rounds
//  -size <n>   attribute value size in bytes
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/intel-hpdd/logging/alert"
	"github.com/rcrowley/go-metrics"

	xattr "github.com/wastore/go-xattr"
)

var (
	count     int
	valueSize int
)

func init() {
	flag.IntVar(&count, "n", 1000, "number of rounds")
	flag.IntVar(&valueSize, "size", 64, "value size in bytes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-n count] [-size bytes] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	h := xattr.Path(flag.Arg(0))
	value := make([]byte, valueSize)
	for i := range value {
		value[i] = byte(i)
	}

	registry := metrics.NewRegistry()
	timers := map[string]metrics.Timer{
		"set":    metrics.GetOrRegisterTimer("set", registry),
		"get":    metrics.GetOrRegisterTimer("get", registry),
		"remove": metrics.GetOrRegisterTimer("remove", registry),
	}

	const name = "user.go-xattr.bench"
	for i := 0; i < count; i++ {
		if err := round(h, timers, name, value); err != nil {
			alert.Abort(err)
		}
	}

	for _, op := range []string{"set", "get", "remove"} {
		report(op, timers[op])
	}
}

func round(h xattr.Path, timers map[string]metrics.Timer, name string, value []byte) (err error) {
	timers["set"].Time(func() {
		err = h.Set(name, value, 0)
	})
	if err != nil {
		return err
	}
	timers["get"].Time(func() {
		_, err = h.Get(name, 0)
	})
	if err != nil {
		return err
	}
	timers["remove"].Time(func() {
		err = h.Remove(name, 0)
	})
	return err
}

func report(op string, t metrics.Timer) {
	s := t.Snapshot()
	fmt.Printf("%-7s %8d ops  mean %10v  p99 %10v  max %10v\n",
		op,
		s.Count(),
		time.Duration(int64(s.Mean())),
		time.Duration(int64(s.Percentile(0.99))),
		time.Duration(s.Max()))
}
