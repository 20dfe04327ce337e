// Package main provides the bin2verilog tool, which converts a flat RV32
// binary (or an RV32 ELF executable) into a Verilog instruction memory
// initialization block.
//
// Usage:
//
//	bin2verilog [bin_file [output_file [start_addr_hex]]]
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sarchlab/rv32check/loader"
	"github.com/sarchlab/rv32check/verilog"
)

type options struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bin2verilog [bin_file [output_file [start_addr_hex]]]",
		Short: "Convert an RV32 program image to Verilog instruction memory",
		Long: "Converts a flat RV32 binary, or an RV32 ELF executable, into a Verilog\n" +
			"instruction memory initialization with one 32-bit word per line.",
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := convert(stdout, stderr, opts, args)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file with input, output and start_address")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// job is a fully resolved conversion request.
type job struct {
	input    string
	output   string
	start    uint32
	startSet bool
}

// resolve merges the config file with the positional arguments. Positional
// arguments win.
func resolve(opts *options, args []string) (job, error) {
	j := job{input: verilog.DefaultInput}

	if opts.configPath != "" {
		cfg, err := verilog.LoadConfig(opts.configPath)
		if err != nil {
			return job{}, err
		}
		if cfg.Input != "" {
			j.input = cfg.Input
		}
		j.output = cfg.Output
		if cfg.StartAddress != "" {
			addr, err := verilog.ParseAddress(cfg.StartAddress)
			if err != nil {
				return job{}, err
			}
			j.start, j.startSet = addr, true
		}
	}

	if len(args) > 0 {
		j.input = args[0]
	}
	if len(args) > 1 {
		j.output = args[1]
	}
	if len(args) > 2 {
		addr, err := verilog.ParseAddress(args[2])
		if err != nil {
			return job{}, err
		}
		j.start, j.startSet = addr, true
	}

	if j.output == "" {
		j.output = verilog.DefaultOutputPath(j.input)
	}

	return j, nil
}

func convert(stdout, stderr io.Writer, opts *options, args []string) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	j, err := resolve(opts, args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(j.input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", j.input, err)
	}

	image := data
	if loader.IsELF(data) {
		prog, err := loader.Parse(bytes.NewReader(data))
		if err != nil {
			return err
		}

		base, flat, err := prog.Image()
		if err != nil {
			return err
		}
		logger.Debug("flattened ELF image",
			"segments", len(prog.Segments), "base", fmt.Sprintf("0x%08x", base), "bytes", len(flat))

		image = flat
		if !j.startSet {
			j.start = base
		}
	}

	out, err := os.Create(j.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", j.output, err)
	}
	defer func() { _ = out.Close() }()

	sum, err := verilog.Write(out, image, verilog.Options{
		StartAddr:  j.start,
		SourceName: filepath.Base(j.input),
	})
	if err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", j.output, err)
	}

	logger.Debug("wrote verilog", "input", j.input, "output", j.output, "bytes", sum.Bytes)

	_, _ = fmt.Fprintf(stdout, "Successfully converted %s\n", j.input)
	_, _ = fmt.Fprintf(stdout, "  Output: %s\n", j.output)
	_, _ = fmt.Fprintf(stdout, "  Instructions: %d\n", sum.Instructions)
	_, _ = fmt.Fprintf(stdout, "  Address range: 0x%08x - 0x%08x\n", sum.FirstAddr, sum.LastAddr)

	return nil
}
