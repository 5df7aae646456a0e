package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/staticstr"
	"github.com/rawbytedev/staticstr/pkg/strwire"
)

// Config is read from the YAML file named by -config.
type Config struct {
	Capacity   int             `yaml:"capacity"` // 23, 63 or 255
	Compress   bool            `yaml:"compress"`
	Truncate   bool            `yaml:"truncate"`
	Rounds     int             `yaml:"rounds"`
	MemProfile string          `yaml:"mem_profile"`
	Strings    []staticstr.Max `yaml:"strings"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{Capacity: 63, Rounds: 1}
	if path == "" {
		for _, s := range []string{"hello", "a🤔", "fixed capacity, no heap"} {
			v, _ := staticstr.TryFrom[[255]byte](s)
			cfg.Strings = append(cfg.Strings, v)
		}
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	return cfg, nil
}

func run[A staticstr.Array](cfg *Config) ([]staticstr.String[A], error) {
	in := make([]staticstr.String[A], 0, len(cfg.Strings))
	for i := range cfg.Strings {
		src := cfg.Strings[i].String()
		var v staticstr.String[A]
		var err error
		if cfg.Truncate {
			v, err = staticstr.FromTruncate[A](src)
		} else {
			v, err = staticstr.TryFrom[A](src)
		}
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}
		in = append(in, v)
	}

	enc := &strwire.Encoder{Compress: cfg.Compress}
	dec := &strwire.Decoder{Truncate: cfg.Truncate}
	var out []staticstr.String[A]
	for r := 0; r < cfg.Rounds; r++ {
		data, err := strwire.Encode(enc, in)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			log.Printf("frame: %d bytes for %d strings (compress=%v)", len(data), len(in), cfg.Compress)
		}
		out, err = strwire.DecodeInto[A](dec, data)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func report[A staticstr.Array](cfg *Config) error {
	out, err := run[A](cfg)
	if err != nil {
		return err
	}
	for i := range out {
		log.Printf("%2d len=%-3d cap=%-3d %q", i, out[i].Len(), out[i].Cap(), out[i].String())
	}
	return nil
}

func main() {
	path := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MemProfile != "" {
		runtime.MemProfileRate = 1
	}

	switch cfg.Capacity {
	case 23:
		err = report[[23]byte](cfg)
	case 63:
		err = report[[63]byte](cfg)
	case 255:
		err = report[[255]byte](cfg)
	default:
		err = fmt.Errorf("unsupported capacity %d", cfg.Capacity)
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
