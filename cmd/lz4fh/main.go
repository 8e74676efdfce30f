/*
lz4fh compresses and decompresses Apple II hi-res pages using the LZ4FH
format. It is a thin driver around the github.com/fadden/lz4fh core: mode
selection, flag parsing, and file I/O live here so the core package stays
a pure byte-slice-in, byte-slice-out library.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/fadden/lz4fh"
	"github.com/fadden/lz4fh/internal/testpic"
)

func main() {
	app := &cli.App{
		Name:  "lz4fh",
		Usage: "compress and decompress Apple II hi-res pages with LZ4FH",
		Commands: []*cli.Command{
			compressCommand,
			decompressCommand,
			testCommand,
			testdataCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("lz4fh: %v", err)
	}
}

var preserveHolesFlag = &cli.BoolFlag{
	Name:    "preserve-holes",
	Aliases: []string{"h"},
	Usage:   "don't fill or remove hi-res screen holes",
}

var fastFlag = &cli.BoolFlag{
	Name:    "fast",
	Aliases: []string{"1"},
	Usage:   "use greedy parsing instead of the optimal parser",
}

var compressCommand = &cli.Command{
	Name:      "compress",
	Usage:     "compress a raw hi-res page",
	ArgsUsage: "infile outfile",
	Flags:     []cli.Flag{preserveHolesFlag, fastFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return fmt.Errorf("compress requires infile and outfile")
		}
		return compressFile(ctx.Args().Get(0), ctx.Args().Get(1), optionsFromContext(ctx))
	},
}

var decompressCommand = &cli.Command{
	Name:      "decompress",
	Usage:     "decompress an LZ4FH stream",
	ArgsUsage: "infile outfile",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return fmt.Errorf("decompress requires infile and outfile")
		}
		return decompressFile(ctx.Args().Get(0), ctx.Args().Get(1))
	},
}

var testCommand = &cli.Command{
	Name:      "test",
	Usage:     "compress one or more images in memory and report pass/fail for each",
	ArgsUsage: "infile...",
	Flags:     []cli.Flag{preserveHolesFlag, fastFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return fmt.Errorf("test requires at least one input file")
		}
		return testFiles(ctx.Args().Slice(), optionsFromContext(ctx))
	},
}

var testdataCommand = &cli.Command{
	Name:      "testdata",
	Usage:     "write the canonical test images to a directory",
	ArgsUsage: "outdir",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("testdata requires an output directory")
		}
		return writeTestdata(ctx.Args().Get(0))
	},
}

func optionsFromContext(ctx *cli.Context) lz4fh.Options {
	mode := lz4fh.Optimal
	if ctx.Bool(fastFlag.Name) {
		mode = lz4fh.Greedy
	}
	return lz4fh.Options{
		Mode:          mode,
		PreserveHoles: ctx.Bool(preserveHolesFlag.Name),
		Verify:        true,
	}
}

func compressFile(inPath, outPath string, opt lz4fh.Options) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	c, err := lz4fh.NewCompressor(opt, in)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := c.WriteTo(out)
	if err != nil {
		return err
	}

	res := c.Result()
	fmt.Printf("%s -> %s: %d bytes (%s parse, holes %s)\n",
		inPath, outPath, n, opt.Mode, holeSummary(res))
	return nil
}

func holeSummary(res *lz4fh.CompressResult) string {
	if res.UsedContentFill {
		return "content-filled"
	}
	return "zeroed"
}

func decompressFile(inPath, outPath string) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	data, err := lz4fh.Decompress(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0666); err != nil {
		return err
	}
	fmt.Printf("%s -> %s: %d bytes\n", inPath, outPath, len(data))
	return nil
}

// testFiles compresses (and internally verifies) every file in paths,
// continuing past failures and reporting all of them together, mirroring
// the reference C tool's "-t" mode that loops over every input file
// regardless of earlier failures.
func testFiles(paths []string, opt lz4fh.Options) error {
	var errs *multierror.Error
	for _, path := range paths {
		if err := testFile(path, opt); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return errs.ErrorOrNil()
}

func testFile(path string, opt lz4fh.Options) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := lz4fh.Compress(src, opt)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok, %d -> %d bytes (holes %s)\n", path, res.InputSize, len(res.Data), holeSummary(res))
	return nil
}

func writeTestdata(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, img := range testpic.All() {
		if err := os.WriteFile(dir+"/"+img.Name, img.Data, 0666); err != nil {
			return err
		}
	}
	return nil
}
