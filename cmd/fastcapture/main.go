// Command fastcapture loads a JSON template registry and a JSON array of
// messages, encodes every message with fastcodec, and writes the result to
// a framed, optionally compressed capture file for later replay or
// inspection.
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/samholt/fastenc/compress"
	"github.com/samholt/fastenc/fastcodec"
	"github.com/samholt/fastenc/format"
	"github.com/samholt/fastenc/registry"
)

var captureMagic = [4]byte{'F', 'C', 'A', 'P'}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fastcapture:", err)
		os.Exit(1)
	}
}

func run() error {
	templatesPath := flag.String("templates", "", "path to the JSON template registry")
	messagesPath := flag.String("messages", "", "path to the JSON message array")
	outPath := flag.String("out", "", "path to write the capture file")
	compressionName := flag.String("compression", "none", "none|s2|lz4|zstd")
	flag.Parse()

	if *templatesPath == "" || *messagesPath == "" || *outPath == "" {
		return fmt.Errorf("-templates, -messages and -out are all required")
	}

	compressionType, err := parseCompressionType(*compressionName)
	if err != nil {
		return err
	}

	reg, err := loadRegistry(*templatesPath)
	if err != nil {
		return err
	}

	messages, err := loadMessages(*messagesPath)
	if err != nil {
		return err
	}

	payload, err := encodeCapture(reg, messages)
	if err != nil {
		return err
	}

	return writeCaptureFile(*outPath, compressionType, payload)
}

func parseCompressionType(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	case "zstd":
		return format.CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func loadRegistry(path string) (*fastcodec.TemplateRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	return registry.LoadJSON(data)
}

func loadMessages(path string) ([]rawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	var messages []rawMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	return messages, nil
}

// encodeCapture encodes every message and frames each one with its own
// 4-byte big-endian length prefix, so a replay tool can split the
// concatenated (and possibly compressed) payload back into messages
// without re-parsing FAST.
func encodeCapture(reg *fastcodec.TemplateRegistry, messages []rawMessage) ([]byte, error) {
	enc, err := fastcodec.NewEncoder(reg)
	if err != nil {
		return nil, err
	}

	dest := fastcodec.NewDataDestination()
	accessor := newMessageStreamAccessor(messages)

	var out []byte
	var frame [4]byte
	onMessage := func(msg []byte) error {
		binary.BigEndian.PutUint32(frame[:], uint32(len(msg)))
		out = append(out, frame[:]...)
		out = append(out, msg...)

		return nil
	}

	if err := enc.EncodeMessages(dest, accessor, onMessage); err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}

	return out, nil
}

func writeCaptureFile(path string, compressionType format.CompressionType, payload []byte) error {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress capture payload: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(captureMagic[:]); err != nil {
		return err
	}
	if _, err := f.Write([]byte{byte(compressionType)}); err != nil {
		return err
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(compressed)))
	if _, err := f.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := f.Write(compressed); err != nil {
		return err
	}

	return nil
}
