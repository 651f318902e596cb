package huffman

import (
	"fmt"
)

// Logger receives progress and failure reports from a Codec.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Config holds configuration for a Codec.
type Config struct {
	Logger Logger // Receives one report per operation (default: discard)
}

// Option is a functional option for configuring a Codec.
type Option func(*Config)

// WithLogger sets the Logger that receives the Codec's reports.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Codec compresses text with a Huffman code derived from the text itself,
// and decompresses the containers it produced.
//
// Plain containers do not carry their code table: Decompress decodes with
// the Table left behind by the most recent successful Compress.  Use
// CompressSealed and OpenSealed when the two sides do not share a Codec.
//
// A Codec is not safe for concurrent use.
type Codec struct {
	cfg   Config
	table *Table
}

// New returns a Codec with no code table.  The zero value of Codec is also
// ready to use.
func New(opts ...Option) *Codec {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Codec{cfg: cfg}
}

// Table returns the code table from the most recent successful Compress, or
// nil if there is none.
func (c *Codec) Table() *Table {
	return c.table
}

// Compress derives a code table from text, stores it on the Codec, and
// returns text packed into a container.  Empty text is rejected with
// ErrInvalidInput.
func (c *Codec) Compress(text string) ([]byte, error) {
	symbols, err := SymbolsOf(text)
	if err != nil {
		return nil, c.fail("compress", err)
	}
	return c.CompressSymbols(symbols)
}

// CompressSymbols is like Compress, but for an arbitrary Symbol sequence.
func (c *Codec) CompressSymbols(symbols []Symbol) ([]byte, error) {
	t, err := buildTable(symbols)
	if err != nil {
		return nil, c.fail("compress", err)
	}

	bits, err := EncodeSymbols(t, symbols)
	if err != nil {
		return nil, c.fail("compress", err)
	}

	out := Pack(bits)
	c.table = t
	c.logger().Infof("compressed %d symbols (%d distinct) into %d bytes", len(symbols), t.Len(), len(out))
	return out, nil
}

// Recompress packs text with the code table of the most recent successful
// Compress, without deriving a new one.  Symbols that were not present in
// the original text are rejected with ErrUnknownSymbol.
func (c *Codec) Recompress(text string) ([]byte, error) {
	if c.table == nil {
		return nil, c.fail("recompress", ErrNoCodeTable)
	}
	symbols, err := SymbolsOf(text)
	if err != nil {
		return nil, c.fail("recompress", err)
	}
	bits, err := EncodeSymbols(c.table, symbols)
	if err != nil {
		return nil, c.fail("recompress", err)
	}
	return Pack(bits), nil
}

// Decompress unpacks a container produced by this Codec and returns the
// original text.  It fails with ErrNoCodeTable if Compress has not yet
// succeeded.
func (c *Codec) Decompress(data []byte) (string, error) {
	symbols, err := c.DecompressSymbols(data)
	if err != nil {
		return "", err
	}
	return StringOf(symbols), nil
}

// DecompressSymbols is like Decompress, but returns the Symbol sequence.
func (c *Codec) DecompressSymbols(data []byte) ([]Symbol, error) {
	if c.table == nil {
		return nil, c.fail("decompress", ErrNoCodeTable)
	}
	symbols, err := decodeContainer(c.table, data)
	if err != nil {
		return nil, c.fail("decompress", err)
	}
	c.logger().Infof("decompressed %d bytes into %d symbols", len(data), len(symbols))
	return symbols, nil
}

// Decompress unpacks a container that was produced with the code table t.
func Decompress(t *Table, data []byte) (string, error) {
	if t == nil {
		return "", ErrNoCodeTable
	}
	symbols, err := decodeContainer(t, data)
	if err != nil {
		return "", err
	}
	return StringOf(symbols), nil
}

func (c *Codec) logger() Logger {
	if c.cfg.Logger == nil {
		return nopLogger{}
	}
	return c.cfg.Logger
}

func (c *Codec) fail(op string, err error) error {
	c.logger().Errorf("%s: %v", op, err)
	return err
}

func buildTable(symbols []Symbol) (*Table, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	root, err := BuildTree(CountFrequencies(symbols))
	if err != nil {
		return nil, err
	}
	return DeriveTable(root)
}

func decodeContainer(t *Table, data []byte) ([]Symbol, error) {
	bits, err := Unpack(data)
	if err != nil {
		return nil, err
	}
	return DecodeBits(t, bits)
}
