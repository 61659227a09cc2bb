// Command streamvbyte encodes and decodes streams of newline-separated
// uint32s using the Stream VByte codec, mirroring the reference crate's
// enc/dec example CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Akron/streamvbyte"
)

var rootCmd = &cobra.Command{
	Use:   "streamvbyte [command]",
	Short: "Stream VByte encode/decode tool",
	Long:  ``,
}

var encCmd = &cobra.Command{
	Use:   "enc",
	Short: "encode one uint32 per line from stdin, writing encoded bytes to stdout",
	Args:  cobra.NoArgs,
	RunE:  runEnc,
}

var decCmd = &cobra.Command{
	Use:   "dec <count>",
	Short: "decode count values from stdin, writing one decoded integer per line to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runDec,
}

func main() {
	log.SetFlags(0)

	rootCmd.AddCommand(encCmd, decCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runEnc(cmd *cobra.Command, args []string) error {
	var nums []uint32

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return fmt.Errorf("each line must be a uint32: %w", err)
		}
		nums = append(nums, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	encoded := streamvbyte.EncodeUint32(nums, nil)

	if _, err := os.Stdout.Write(encoded); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Encoded %d numbers\n", len(nums))
	return nil
}

func runDec(cmd *cobra.Command, args []string) (err error) {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("arg to dec must be a number: %w", err)
	}

	encoded, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	// DecodeUint32 panics on malformed/truncated input; recover it into the
	// same nonzero-exit path as any other error here.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding stdin: %v", r)
		}
	}()

	decoded := streamvbyte.DecodeUint32(encoded, count, nil)

	w := bufio.NewWriter(os.Stdout)
	for _, d := range decoded {
		fmt.Fprintln(w, d)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Decoded %d numbers\n", len(decoded))
	return nil
}
