// Command tns validates tnetstring streams and transcodes them to and from
// other serialization formats.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/tnetstr"
	"github.com/unkn0wn-root/tnetstr/codec"
	"github.com/unkn0wn-root/tnetstr/native"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Check checkCmd `cmd:"" help:"Validate a stream of concatenated tnetstring frames."`
	Conv  convCmd  `cmd:"" help:"Convert between tnetstring, json, cbor, msgpack and pb."`
}

func main() {
	var c cli
	k := kong.Parse(&c,
		kong.Name("tns"),
		kong.Description("typed netstring toolbox"),
		kong.UsageOnError(),
	)
	log, err := newLogger(c.Verbose)
	k.FatalIfErrorf(err)
	defer log.Sync()

	k.FatalIfErrorf(k.Run(log))
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

type checkCmd struct {
	Path string `arg:"" optional:"" help:"Input file (default stdin)."`
}

// Run pops frames off the input until it is exhausted and reports what it
// found. The first malformed frame stops the scan with its byte offset.
func (c *checkCmd) Run(log *zap.Logger) error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}

	total := len(data)
	frames := 0
	for len(data) > 0 {
		v, rest, err := native.Pop(data)
		if err != nil {
			return fmt.Errorf("frame %d at offset %d: %w", frames, total-len(data), err)
		}
		log.Debug("frame",
			zap.Int("index", frames),
			zap.Int("offset", total-len(data)),
			zap.Int("size", len(data)-len(rest)),
			zap.String("type", typeName(v)),
		)
		data = rest
		frames++
	}

	fmt.Printf("ok: %d frame(s), %d byte(s)\n", frames, total)
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return tnetstr.TagNull.String()
	case bool:
		return tnetstr.TagBool.String()
	case string:
		return tnetstr.TagString.String()
	case float64:
		return tnetstr.TagFloat.String()
	case []any:
		return tnetstr.TagList.String()
	case native.Dict:
		return tnetstr.TagDict.String()
	}
	return tnetstr.TagInteger.String()
}

type convCmd struct {
	From     string `default:"tns" enum:"tns,json,cbor,msgpack,pb" help:"Input format."`
	To       string `default:"json" enum:"tns,json,cbor,msgpack,pb" help:"Output format."`
	MaxBytes int    `default:"0" help:"Reject inputs larger than this many bytes (0 = no limit)."`
	Path     string `arg:"" optional:"" help:"Input file (default stdin)."`
}

// Run decodes the input with the source codec into untyped values and
// re-encodes with the target codec onto stdout.
func (c *convCmd) Run(log *zap.Logger) error {
	data, err := readInput(c.Path)
	if err != nil {
		return err
	}

	from := codec.LimitCodec[any]{Inner: formatCodec(c.From), MaxDecode: c.MaxBytes}
	to := formatCodec(c.To)

	v, err := from.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.From, err)
	}
	log.Debug("decoded", zap.String("from", c.From), zap.Int("bytes", len(data)))

	out, err := to.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.To, err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	// keep text formats newline-terminated for the terminal
	if c.To == "json" || c.To == "tns" {
		fmt.Println()
	}
	return nil
}

func formatCodec(name string) codec.Codec[any] {
	switch name {
	case "json":
		return codec.JSONCodec[any]{}
	case "cbor":
		return codec.CBOR[any]{}
	case "msgpack":
		return codec.Msgpack[any]{}
	case "pb":
		return codec.Structpb{}
	default:
		return codec.Tnetstring{}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
