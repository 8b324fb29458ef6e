// Command snappytool is a thin file/stdin adapter over the snappy
// package's buffer-to-buffer primitives. It is not part of the codec
// core; it exists so the core can be exercised from a shell without
// every caller writing their own I/O plumbing.
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/skyport-labs/snappy"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("snappytool failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var inPath, outPath string

	root := &cobra.Command{
		Use:           "snappytool",
		Short:         "Compress, decompress, and inspect Snappy blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&inPath, "in", "-", "input file, or - for stdin")
	root.PersistentFlags().StringVar(&outPath, "out", "-", "output file, or - for stdout")

	var level string
	compressCmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a Snappy block",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(inPath, outPath, level)
		},
	}
	compressCmd.Flags().StringVar(&level, "level", "fast", "compression level: fast or better")

	decompressCmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a Snappy block",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(inPath, outPath)
		},
	}

	lengthCmd := &cobra.Command{
		Use:   "length",
		Short: "Print the uncompressed length declared by a Snappy block",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLength(inPath)
		},
	}

	validCmd := &cobra.Command{
		Use:   "valid",
		Short: "Check whether a Snappy block decodes cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValid(inPath)
		},
	}

	root.AddCommand(compressCmd, decompressCmd, lengthCmd, validCmd)
	return root
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func parseLevel(s string) (snappy.Level, error) {
	switch s {
	case "", "fast":
		return snappy.LevelFast, nil
	case "better":
		return snappy.LevelBetter, nil
	default:
		return 0, errors.Errorf("unrecognized level %q (want fast or better)", s)
	}
}

func runCompress(inPath, outPath, level string) error {
	src, err := readInput(inPath)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	dst := make([]byte, snappy.MaxEncodedLen(len(src)))
	n, err := snappy.Compress(dst, src, snappy.Options{Level: lvl})
	if err != nil {
		return errors.Wrap(err, "compressing")
	}

	log.WithFields(logrus.Fields{
		"input_bytes":  len(src),
		"output_bytes": n,
		"level":        level,
	}).Info("compressed block")

	return errors.Wrap(writeOutput(outPath, dst[:n]), "writing output")
}

func runDecompress(inPath, outPath string) error {
	src, err := readInput(inPath)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	n, err := snappy.UncompressedLen(src)
	if err != nil {
		return errors.Wrap(err, "reading length prefix")
	}
	dst := make([]byte, n)
	written, err := snappy.Decompress(dst, src)
	if err != nil {
		return errors.Wrap(err, "decompressing")
	}

	log.WithFields(logrus.Fields{
		"input_bytes":  len(src),
		"output_bytes": written,
	}).Info("decompressed block")

	return errors.Wrap(writeOutput(outPath, dst[:written]), "writing output")
}

func runLength(inPath string) error {
	src, err := readInput(inPath)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	n, err := snappy.UncompressedLen(src)
	if err != nil {
		return errors.Wrap(err, "reading length prefix")
	}
	log.WithField("uncompressed_bytes", n).Info("length")
	_, err = os.Stdout.WriteString(strconv.Itoa(n) + "\n")
	return err
}

func runValid(inPath string) error {
	src, err := readInput(inPath)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	ok := snappy.Valid(src)
	log.WithField("valid", ok).Info("validated block")
	if !ok {
		os.Exit(1)
	}
	return nil
}
