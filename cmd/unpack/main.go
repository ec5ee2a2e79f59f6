package main

import (
	"fmt"
	"os"

	"github.com/dargueta/dianoga"
	"github.com/dargueta/dianoga/container"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Decompress a file created by `dianoga compress`.\nUsage: %s input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	outputFilePath := os.Args[2]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}
	defer sourceFile.Close()

	archive, err := container.Read(sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Not a valid compressed file: %s\n", err)
		os.Exit(2)
	}
	if archive.BitString {
		fmt.Fprintln(os.Stderr, "File holds a bitstring; use `dianoga decode` instead.")
		os.Exit(2)
	}

	codec := dianoga.New(dianoga.WithSentinel(archive.Sentinel))
	output, err := codec.Decompress(archive.Payload, archive.Ring, archive.Transformed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(2)
	}

	err = os.WriteFile(outputFilePath, output, 0o644)
	if err != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to write file: `%v`: %s\n", outputFilePath, err)
		os.Exit(1)
	}

	fmt.Printf("Decompressed input file to %d bytes.\n", len(output))
}
