package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArgsKey = "max-args"
	outKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate fixed arity signal and event wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArgsKey,
				Usage: "Largest number of slot arguments to generate wrappers for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: filepath.Join("sigslot", "arity.go"),
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for sigslot started !")
	defer func() {
		log.Printf("Codegen for sigslot finished in %v", time.Since(start))
	}()

	maxArgs := int(cmd.Uint(maxArgsKey))
	if maxArgs < 2 {
		return fmt.Errorf("%s must be at least 2, got %d", maxArgsKey, maxArgs)
	}
	log.Printf("Arity: 0..%d", maxArgs)

	contents, err := format.Source([]byte(templates.ArityGen(maxArgs)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	out := cmd.String(outKey)
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %s", out)
	return nil
}
