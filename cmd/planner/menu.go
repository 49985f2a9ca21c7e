package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
)

// selectCriterion. interactive criteria menu. anything but 1, 2 or 3 falls back to travel time.
func selectCriterion(in io.Reader, out io.Writer) costfunction.Criterion {
	fmt.Fprintln(out, "Select optimization criteria:")
	fmt.Fprintln(out, "1. Shortest travel time")
	fmt.Fprintln(out, "2. Least cost")
	fmt.Fprintln(out, "3. Minimal number of transfers")
	fmt.Fprint(out, "Enter the number of your choice: ")

	var choice string
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		choice = scanner.Text()
	}

	switch choice {
	case "1", "2", "3":
		c, _ := costfunction.ParseCriterion(choice)
		return c
	default:
		fmt.Fprintln(out, "Invalid choice. Defaulting to shortest travel time.")
		return costfunction.Time
	}
}
