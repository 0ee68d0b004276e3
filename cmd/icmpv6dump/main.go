// Command icmpv6dump decodes a single ICMPv6 message from a hex string or
// raw file and prints its fields, options, and extensions. It mirrors the
// teacher's flag-driven CLI style (parse flags, do one thing, exit).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ljx0305/libtins/icmpv6"
	"github.com/ljx0305/libtins/internal/xlog"
)

func main() {
	var (
		inputPath = flag.String("f", "-", "input file, or - for stdin")
		raw       = flag.Bool("raw", false, "treat input as raw bytes instead of hex text")
		src       = flag.String("src", "", "enclosing IPv6 source address, for checksum verification")
		dst       = flag.String("dst", "", "enclosing IPv6 destination address, for checksum verification")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		xlog.SetLevel(xlog.DEBUG)
	}

	data, err := readInput(*inputPath, *raw)
	if err != nil {
		xlog.Errorln("read input: %v", err)
		os.Exit(1)
	}

	m, err := icmpv6.ParseMessage(data)
	if err != nil {
		xlog.Errorln("parse: %v", err)
		os.Exit(1)
	}

	fmt.Printf("type=%s code=%d checksum=%#04x\n", m.Header.Type, m.Header.Code, m.Header.Checksum)
	printOptions(m)
	if m.Extensions != nil {
		fmt.Printf("extensions: %d object(s)\n", len(m.Extensions.Objects))
	}
	if m.Payload != nil {
		fmt.Printf("inner payload: %d byte(s)\n", len([]byte(*m.Payload)))
	}

	if *src != "" && *dst != "" {
		verifyChecksum(m, *src, *dst)
	}
}

func readInput(path string, raw bool) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if raw {
		return contents, nil
	}
	return hex.DecodeString(strings.TrimSpace(string(contents)))
}

func printOptions(m *icmpv6.Message) {
	if m.Options.Len() == 0 {
		return
	}
	fmt.Printf("options: %d record(s), %d byte(s)\n", m.Options.Len(), m.Options.Size())
	for _, opt := range m.Options.All() {
		fmt.Printf("  kind=%d payload=%d byte(s)\n", opt.Kind, len(opt.Payload))
	}
}

func verifyChecksum(m *icmpv6.Message, src, dst string) {
	ph, err := newPseudoHeader(src, dst)
	if err != nil {
		xlog.Warnln("bad pseudo-header addresses: %v", err)
		return
	}
	out, err := m.Marshal(ph)
	if err != nil {
		xlog.Warnln("marshal for checksum verification: %v", err)
		return
	}
	fmt.Printf("checksum with src=%s dst=%s => %#04x\n", src, dst, out[2:4])
}
