package verilog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInput is the input file converted when none is given.
const DefaultInput = "test_rv32i.bin"

// Config holds conversion settings loaded from a YAML file.
//
//	input: build/test_rv32i.bin
//	output: rtl/instr_mem.v
//	start_address: "0x0"
type Config struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	StartAddress string `yaml:"start_address"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ParseAddress parses a hexadecimal address, with or without a 0x prefix.
func ParseAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid start address %q: %w", s, err)
	}
	return uint32(v), nil
}
