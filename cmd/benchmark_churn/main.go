package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotparty/sigslot"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

const (
	scenariosKey = "scenarios"
	repeatsKey   = "repeats"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_churn",
		Usage: "Measure emission cost while slots keep disconnecting",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  scenariosKey,
				Usage: "YAML file with scenarios, the built in set when empty",
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per scenario, the fastest is reported",
				Value: 5,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

type scenario struct {
	Name       string   `yaml:"name"`
	Slots      int      `yaml:"slots"`
	Groups     int      `yaml:"groups"`
	Emissions  int      `yaml:"emissions"`
	Disconnect float64  `yaml:"disconnect"`
	Blocked    float64  `yaml:"blocked"`
	SweepLimit *int     `yaml:"sweepLimit"`
	ChurnRatio *float64 `yaml:"churnRatio"`
}

func (s scenario) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("scenario without a name")
	case s.Slots <= 0:
		return fmt.Errorf("scenario %q: slots must be positive", s.Name)
	case s.Emissions <= 0:
		return fmt.Errorf("scenario %q: emissions must be positive", s.Name)
	case s.Disconnect < 0 || s.Disconnect > 1:
		return fmt.Errorf("scenario %q: disconnect must be within [0, 1]", s.Name)
	case s.Blocked < 0 || s.Blocked > 1:
		return fmt.Errorf("scenario %q: blocked must be within [0, 1]", s.Name)
	}
	return nil
}

func (s scenario) options() []sigslot.Option {
	var opts []sigslot.Option
	if s.SweepLimit != nil {
		opts = append(opts, sigslot.WithSweepLimit(*s.SweepLimit))
	}
	if s.ChurnRatio != nil {
		opts = append(opts, sigslot.WithChurnRatio(*s.ChurnRatio))
	}
	return opts
}

func loadScenarios(path string) ([]scenario, error) {
	data := defaultScenarios
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}

	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	for _, s := range f.Scenarios {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

type result struct {
	duration    time.Duration
	invocations int64
	checksum    uint64
	stats       sigslot.Stats
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting churn benchmark, please wait...")
	defer log.Print("Finished churn benchmark")

	scenarios, err := loadScenarios(cmd.String(scenariosKey))
	if err != nil {
		return err
	}
	repeats := int(cmd.Uint(repeatsKey))
	if repeats == 0 {
		repeats = 1
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "slots", "groups", "emissions", "disconnect%",
		"time", "invocations/ms", "entries", "generations", "checksum",
	})

	for _, s := range scenarios {
		log.Printf("Running '%s' scenario", s.Name)

		best := result{duration: time.Hour}
		for i := 0; i < repeats; i++ {
			log.Printf("Running '%s' scenario, iteration %d/%d %d%%", s.Name, i+1, repeats, (i+1)*100/repeats)
			r := runScenario(s)
			if i > 0 && r.checksum != best.checksum {
				return fmt.Errorf("scenario %q: invocation order changed between runs (%x != %x)", s.Name, r.checksum, best.checksum)
			}
			if r.duration < best.duration {
				best = r
			}
		}

		rate := float64(best.invocations) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			s.Name,
			humanize.Comma(int64(s.Slots)),
			strconv.Itoa(s.Groups),
			humanize.Comma(int64(s.Emissions)),
			fmt.Sprintf("%0.2f", 100*s.Disconnect),
			fmt.Sprint(best.duration),
			humanize.Comma(int64(rate)),
			humanize.Comma(int64(best.stats.Entries)),
			humanize.Comma(int64(best.stats.Generation)),
			strconv.FormatUint(best.checksum, 16),
		})
	}
	table.Render()
	return nil
}

// runScenario is deterministic: the checksum covers the order in which slots
// ran across every emission and must match between runs.
func runScenario(s scenario) result {
	random := rand.New(rand.NewSource(0))
	digest := xxhash.New()
	var invocations int64
	var label [8]byte

	sig := sigslot.New[int, int](s.options()...)
	nextID := 0

	var connect func()
	connect = func() {
		id := nextID
		nextID++
		slot := func(c sigslot.Connection, v int) int {
			invocations++
			digest.Write(strconv.AppendInt(label[:0], int64(id), 36))
			if random.Float64() < s.Disconnect {
				c.Disconnect()
				connect()
			}
			return v + id
		}
		if s.Groups == 0 {
			sig.ConnectExtended(slot)
			return
		}
		sig.ConnectExtendedGroup(random.Intn(s.Groups), slot)
	}

	var blocks []*sigslot.SharedConnectionBlock
	for i := 0; i < s.Slots; i++ {
		connect()
	}
	if s.Blocked > 0 {
		// block a fixed share by connecting extra slots that never run
		for i := 0; i < int(float64(s.Slots)*s.Blocked); i++ {
			c := sig.Connect(func(v int) int { return v })
			blocks = append(blocks, sigslot.NewSharedConnectionBlock(c, true))
		}
	}

	start := time.Now()
	for i := 0; i < s.Emissions; i++ {
		sig.Emit(i)
	}
	duration := time.Since(start)

	for _, b := range blocks {
		b.Unblock()
	}
	stats := sig.Stats()
	sig.Close()

	return result{
		duration:    duration,
		invocations: invocations,
		checksum:    digest.Sum64(),
		stats:       stats,
	}
}
