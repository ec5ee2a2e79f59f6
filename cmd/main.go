package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dargueta/dianoga"
	"github.com/dargueta/dianoga/container"
	"github.com/dargueta/dianoga/errors"
	"github.com/dargueta/dianoga/transforms/bwt"
	"github.com/hashicorp/go-multierror"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

var log = logging.MustGetLogger("dianoga/cmd")

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	inputFlag := &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Input file path",
		Required: true,
	}
	outputFlag := &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Output file path",
		Required: true,
	}
	binaryFlag := &cli.BoolFlag{
		Name:    "binary",
		Aliases: []string{"b"},
		Usage: "The file is binary, so don't use the Burrows-Wheeler transform. " +
			"When decompressing, this is read from the file and only checked.",
	}
	printFlag := &cli.BoolFlag{
		Name:    "print",
		Aliases: []string{"p"},
		Usage:   "Also print the result to standard output",
	}

	return &cli.App{
		Name: "dianoga",
		Usage: "Compress binary and plain text files using the Burrows-Wheeler transform, " +
			"move-to-front coding, and Huffman coding",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log the size of each stage",
			},
		},
		Before: func(cCtx *cli.Context) error {
			startLogging(cCtx.App.ErrWriter, cCtx.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "compress",
				Usage:  "Compress a file",
				Action: compressFile,
				Flags: []cli.Flag{
					inputFlag,
					outputFlag,
					binaryFlag,
					&cli.UintFlag{
						Name:  "sentinel",
						Usage: "Byte value that never occurs in the input",
						Value: uint(bwt.DefaultSentinel),
					},
				},
			},
			{
				Name:   "decompress",
				Usage:  "Decompress a file created with `compress`",
				Action: decompressFile,
				Flags:  []cli.Flag{inputFlag, outputFlag, binaryFlag},
			},
			{
				Name:   "encode",
				Usage:  "Huffman-encode a file into a bitstring, with no transform",
				Action: encodeFile,
				Flags:  []cli.Flag{inputFlag, outputFlag, printFlag},
			},
			{
				Name:   "decode",
				Usage:  "Decode a bitstring file created with `encode`",
				Action: decodeFile,
				Flags:  []cli.Flag{inputFlag, outputFlag, printFlag},
			},
			{
				Name:   "inspect",
				Usage:  "Show the header and decoder ring of a compressed file",
				Action: inspectFile,
				Flags: []cli.Flag{
					inputFlag,
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Print only the decoder ring, as CSV",
					},
				},
			},
		},
	}
}

func startLogging(output io.Writer, verbose bool) {
	backend := logging.NewLogBackend(output, "dianoga: ", 0)
	formatter := logging.MustStringFormatter("%{level:-7s} %{module:-12s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func compressFile(cCtx *cli.Context) error {
	sentinel := cCtx.Uint("sentinel")
	if sentinel > 255 {
		return errors.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("sentinel must be a byte value, got %d", sentinel))
	}
	useTransform := !cCtx.Bool("binary")

	input, err := readFile(cCtx.String("input"))
	if err != nil {
		return err
	}

	codec := dianoga.New(dianoga.WithSentinel(byte(sentinel)))
	compressed, ring, err := codec.Compress(input, useTransform)
	if err != nil {
		return err
	}

	archive := &container.Archive{
		Ring:        ring,
		Payload:     compressed,
		Transformed: useTransform,
		Sentinel:    byte(sentinel),
	}
	err = writeFile(
		cCtx.String("output"),
		func(w io.Writer) error {
			_, err := container.Write(w, archive)
			return err
		},
	)
	if err != nil {
		return err
	}

	log.Infof("compressed %d bytes to %d", len(input), archive.Size())
	return nil
}

func decompressFile(cCtx *cli.Context) error {
	archive, err := readArchive(cCtx.String("input"))
	if err != nil {
		return err
	}
	if archive.BitString {
		return errors.ErrInvalidArgument.WithMessage(
			"file holds a bitstring; use `decode` instead")
	}
	if cCtx.IsSet("binary") && cCtx.Bool("binary") == archive.Transformed {
		return errors.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("--binary=%t doesn't match how the file was compressed", cCtx.Bool("binary")))
	}

	codec := dianoga.New(dianoga.WithSentinel(archive.Sentinel))
	output, err := codec.Decompress(archive.Payload, archive.Ring, archive.Transformed)
	if err != nil {
		return err
	}

	err = writeFile(
		cCtx.String("output"),
		func(w io.Writer) error {
			_, err := w.Write(output)
			return err
		},
	)
	if err != nil {
		return err
	}

	log.Infof("decompressed %d bytes to %d", len(archive.Payload), len(output))
	return nil
}

func encodeFile(cCtx *cli.Context) error {
	input, err := readFile(cCtx.String("input"))
	if err != nil {
		return err
	}

	bits, ring, err := dianoga.New().Encode(input)
	if err != nil {
		return err
	}
	if cCtx.Bool("print") {
		fmt.Fprintln(cCtx.App.Writer, bits)
	}

	archive := &container.Archive{Ring: ring, Payload: []byte(bits), BitString: true}
	return writeFile(
		cCtx.String("output"),
		func(w io.Writer) error {
			_, err := container.Write(w, archive)
			return err
		},
	)
}

func decodeFile(cCtx *cli.Context) error {
	archive, err := readArchive(cCtx.String("input"))
	if err != nil {
		return err
	}
	if !archive.BitString {
		return errors.ErrInvalidArgument.WithMessage(
			"file doesn't hold a bitstring; use `decompress` instead")
	}

	output, err := dianoga.New().Decode(string(archive.Payload), archive.Ring)
	if err != nil {
		return err
	}
	if cCtx.Bool("print") {
		fmt.Fprintf(cCtx.App.Writer, "%q\n", output)
	}

	return writeFile(
		cCtx.String("output"),
		func(w io.Writer) error {
			_, err := w.Write(output)
			return err
		},
	)
}

func inspectFile(cCtx *cli.Context) error {
	archive, err := readArchive(cCtx.String("input"))
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	if cCtx.Bool("csv") {
		return container.WriteRingCSV(out, archive.Ring)
	}

	fmt.Fprintf(out, "transformed: %t\n", archive.Transformed)
	fmt.Fprintf(out, "bitstring:   %t\n", archive.BitString)
	fmt.Fprintf(out, "sentinel:    0x%02x\n", archive.Sentinel)
	fmt.Fprintf(out, "ring size:   %d\n", archive.Ring.Len())
	fmt.Fprintf(out, "payload:     %d bytes\n", len(archive.Payload))
	for _, entry := range archive.Ring.Entries() {
		fmt.Fprintf(out, "  %-24s %3d %q\n", entry.Code, entry.Symbol, entry.Symbol)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Helper functions

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}
	return data, nil
}

func readArchive(path string) (*container.Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.ErrIO.Wrap(err)
	}
	defer file.Close()
	return container.Read(file)
}

// writeFile creates the file at `path` and passes a buffered writer for it to
// `write`. Errors from writing, flushing, and closing the file are all
// returned.
func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.ErrIO.Wrap(err)
	}

	var result *multierror.Error
	writer := bufio.NewWriter(file)
	if err := write(writer); err != nil {
		result = multierror.Append(result, err)
	}
	if err := writer.Flush(); err != nil {
		result = multierror.Append(result, errors.ErrIO.Wrap(err))
	}
	if err := file.Close(); err != nil {
		result = multierror.Append(result, errors.ErrIO.Wrap(err))
	}
	return result.ErrorOrNil()
}
