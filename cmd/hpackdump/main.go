// Command hpackdump decodes a hex-encoded HPACK header block and prints
// the resulting headers, one per line. It exists to exercise the codec
// end to end from the command line, the same way the toolkit's other
// cmd/ tools are thin flag-driven wrappers around a library package.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/watt-toolkit/hpackwire/pkg/hpackwire/http2"
)

const defaultMaxStringLength = 16 * 1024 * 1024

// Config holds hpackdump's command-line configuration.
type Config struct {
	TableSize    uint
	StringLimit  uint
	JSON         bool
	InputIsStdin bool
	HexInput     string
}

func parseConfig() Config {
	var cfg Config

	flag.UintVar(&cfg.TableSize, "table-size", http2.DefaultDynamicTableSize, "dynamic table size in bytes")
	flag.UintVar(&cfg.StringLimit, "max-string", defaultMaxStringLength, "maximum literal length accepted per string")
	flag.BoolVar(&cfg.JSON, "json", false, "print decoded headers as a JSON array instead of name: value lines")
	flag.Parse()

	if flag.NArg() > 0 {
		cfg.HexInput = flag.Arg(0)
	} else {
		cfg.InputIsStdin = true
	}

	return cfg
}

func main() {
	log.SetFlags(0)
	cfg := parseConfig()

	encoded, err := readInput(cfg)
	if err != nil {
		log.Fatalf("hpackdump: %v", err)
	}

	dec := http2.NewDecoder(uint32(cfg.TableSize), int(cfg.StringLimit))
	headers, err := dec.Decode(encoded)
	if err != nil {
		log.Fatalf("hpackdump: decode: %v", err)
	}

	if err := printHeaders(os.Stdout, headers, cfg.JSON); err != nil {
		log.Fatalf("hpackdump: %v", err)
	}
}

func readInput(cfg Config) ([]byte, error) {
	var raw string

	if cfg.InputIsStdin {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		raw = string(data)
	} else {
		raw = cfg.HexInput
	}

	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, "\n", "")

	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return decoded, nil
}

func printHeaders(w io.Writer, headers http2.HeaderList, asJSON bool) error {
	if asJSON {
		type jsonHeader struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		}
		out := make([]jsonHeader, len(headers))
		for i, h := range headers {
			out[i] = jsonHeader{Name: h.Name, Value: h.Value}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, h := range headers {
		if _, err := fmt.Fprintf(w, "%s: %s\n", h.Name, h.Value); err != nil {
			return err
		}
	}
	return nil
}
