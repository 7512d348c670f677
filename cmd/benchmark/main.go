package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/pkg/mutex"
	"github.com/delaneyj/slotparty/sigslot"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sourcegraph/conc"
)

var (
	cpuProfile = flag.String("cpuprofile", "default.pgo", "write a CPU profile to this file, empty to disable")
	iters      = flag.Int("iters", 100, "emissions measured per configuration")
	emitters   = flag.Int("emitters", 8, "concurrent emitters in the parallel benchmark")
)

var (
	ww = []int{1, 10, 100, 1_000}
	gg = []int{0, 10}
)

type policy struct {
	name    string
	factory mutex.Factory
}

var policies = []policy{
	{"sync.Mutex", mutex.Real},
	{"noop", mutex.NewNoop},
	{"checked", mutex.NewChecked},
}

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkEmit(false)

	benchmarkEmit(true)
	benchmarkParallelEmit(true)
	benchmarkChurn(true)
}

func addOne(v int) int {
	return v + 1
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// connectSlots spreads w slots over groups groups, or leaves them ungrouped
// when groups is zero.
func connectSlots(sig *sigslot.Signal[int, int], w, groups int) {
	for i := 0; i < w; i++ {
		if groups == 0 {
			sig.Connect(addOne)
			continue
		}
		sig.ConnectGroup(i%groups, addOne)
	}
}

func benchmarkEmit(shouldRender bool) {
	for _, p := range policies {
		tbl := newTable(fmt.Sprintf("Emit (%s)", p.name))

		for _, w := range ww {
			for _, g := range gg {
				tach := tachymeter.New(&tachymeter.Config{Size: *iters})

				sig := sigslot.New[int, int](sigslot.WithMutex(p.factory))
				connectSlots(sig, w, g)

				for i := 0; i < *iters; i++ {
					start := time.Now()
					sig.Emit(i)
					tach.AddTime(time.Since(start))
				}

				appendCalc(tbl, fmt.Sprintf("emit: %d slots, %d groups", w, g), tach)
			}
		}

		if shouldRender {
			tbl.Render()
		}
	}
}

func benchmarkParallelEmit(shouldRender bool) {
	tbl := newTable(fmt.Sprintf("Parallel emit (%d emitters)", *emitters))

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: *iters * *emitters})

		sig := sigslot.New[int, int]()
		connectSlots(sig, w, 0)

		wg := conc.NewWaitGroup()
		for e := 0; e < *emitters; e++ {
			wg.Go(func() {
				for i := 0; i < *iters; i++ {
					start := time.Now()
					sig.Emit(i)
					tach.AddTime(time.Since(start))
				}
			})
		}
		wg.Wait()

		appendCalc(tbl, fmt.Sprintf("emit: %d slots", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkChurn measures emissions while every other slot disconnects itself,
// so each emission walks past entries the sweep has not reclaimed yet.
func benchmarkChurn(shouldRender bool) {
	tbl := newTable("Emit under churn")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: *iters})

		sig := sigslot.New[int, int]()
		for i := 0; i < *iters; i++ {
			connectSlots(sig, w, 0)
			for j := 0; j < w; j += 2 {
				sig.ConnectExtended(func(c sigslot.Connection, v int) int {
					c.Disconnect()
					return v
				})
			}

			start := time.Now()
			sig.Emit(i)
			tach.AddTime(time.Since(start))

			sig.DisconnectAll()
		}

		appendCalc(tbl, fmt.Sprintf("churn: %d slots", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
