package protocol

import (
	"io"
	"log/slog"
	"sync"

	"github.com/lunamaple/maplenet/packet"
)

// Writer frames outgoing packets onto an io.Writer, typically a TCP
// connection. Each packet is split into encrypted wire blocks which are
// written strictly in order; because the cipher's sequence advances with every
// block, concurrent WritePacket calls are serialized internally.
type Writer struct {
	w       io.Writer
	cipher  packet.Cipher
	seqBase int

	logger *slog.Logger
	mu     sync.Mutex
}

// NewWriter creates a Writer for one connection. seqBase is the protocol
// version negotiated for the connection and cipher its rolling send cipher.
func NewWriter(w io.Writer, cipher packet.Cipher, seqBase int, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{
		w:       w,
		cipher:  cipher,
		seqBase: seqBase,
		logger:  logger,
	}
}

// WritePacket frames p and writes its blocks to the underlying writer. An
// error from the cipher or the writer is returned as-is; the caller is
// expected to tear the connection down rather than retry, as the cipher
// sequence can no longer be trusted.
func (w *Writer) WritePacket(p *packet.Out) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	blocks, err := p.Blocks(w.seqBase, w.cipher)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if _, err := w.w.Write(block); err != nil {
			return err
		}
	}
	w.logger.Debug("wrote packet", "len", p.Offset(), "blocks", len(blocks))
	return nil
}
