// SPDX-License-Identifier: MIT

// Command percolation reads a grid size n followed by (row, col) pairs from
// standard input, opens each site, and prints whether the grid percolates.
//
//	echo "3  1 1  2 1  3 1" | percolation
//	true
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/percolation/percolation"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ok, err := run(os.Stdin, logger)
	if err != nil {
		logger.Error("percolation failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(ok)
}

func run(r io.Reader, logger *slog.Logger) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc)
	if err != nil {
		return false, fmt.Errorf("read n: %w", err)
	}
	p, err := percolation.New(n)
	if err != nil {
		return false, err
	}

	for {
		row, err := nextInt(sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false, fmt.Errorf("read row: %w", err)
		}
		col, err := nextInt(sc)
		if err != nil {
			return false, fmt.Errorf("read col after row %d: %w", row, err)
		}
		if err = p.Open(row, col); err != nil {
			return false, err
		}
		logger.Debug("opened", "row", row, "col", col, "open_sites", p.NumberOfOpenSites())
	}

	return p.Percolates(), nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	return strconv.Atoi(sc.Text())
}
