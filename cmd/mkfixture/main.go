// mkfixture creates a small representative survey CSV fixture from a larger export.
// Two-pass: first scans all rows and buckets those that exercise each cleaning rule,
// then selects the best N.
// Usage: go run ./cmd/mkfixture --in testdata/survey.csv --out testdata/survey-small.csv --rows 200
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gyeh/surveyclean/internal/clean"
	"github.com/gyeh/surveyclean/internal/csvio"
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/normalize"
)

func main() {
	in := flag.String("in", "testdata/survey.csv", "input survey csv")
	out := flag.String("out", "testdata/survey-small.csv", "output csv")
	maxRows := flag.Int("rows", 200, "max rows to output")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	// No null markers: the fixture keeps every raw cell verbatim.
	table, err := csvio.NewReader([]string{}).ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if missing := clean.MissingColumns(table.Columns); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "input is missing columns: %v\n", missing)
		os.Exit(1)
	}

	// Pass 1: bucket rows by the cleaning rule they exercise.
	type bucket struct {
		name string
		rows []int
		want int
	}
	buckets := []*bucket{
		{name: "gender", want: 40},
		{name: "age", want: 20},
		{name: "size", want: 20},
		{name: "placeholder", want: 40},
		{name: "general", want: 0},
	}
	bucketMap := make(map[string]*bucket)
	for _, b := range buckets {
		bucketMap[b.name] = b
	}

	take := func(name string, i int) bool {
		b := bucketMap[name]
		if len(b.rows) >= b.want {
			return false
		}
		b.rows = append(b.rows, i)
		return true
	}

	for i, rec := range table.Records {
		placed := false
		if g := rec.Get(model.ColGender); g == nil || normalize.Gender(g) != *g {
			placed = take("gender", i) || placed
		}
		if a := rec.Get(model.ColAge); normalize.ValidAge(a) == nil {
			placed = take("age", i) || placed
		}
		if s := rec.Get(model.ColNoEmployees); s == nil || normalize.CompanySize(s) != *s {
			placed = take("size", i) || placed
		}
		if hasPlaceholder(rec) {
			placed = take("placeholder", i) || placed
		}
		if !placed && len(bucketMap["general"].rows) < *maxRows {
			bucketMap["general"].rows = append(bucketMap["general"].rows, i)
		}
	}
	fmt.Printf("Scanned %d rows\n", table.Len())

	if *checkOnly {
		for _, b := range buckets {
			fmt.Printf("  %-12s %d\n", b.name, len(b.rows))
		}
		return
	}

	// Merge buckets in priority order, keeping each source row once and in file order.
	seen := make(map[int]bool)
	var selected []int
	for _, b := range buckets {
		for _, i := range b.rows {
			if len(selected) >= *maxRows {
				break
			}
			if !seen[i] {
				seen[i] = true
				selected = append(selected, i)
			}
		}
	}
	sort.Ints(selected)

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	if err := w.Write(table.Columns); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}
	for _, i := range selected {
		rec := table.Records[i]
		line := make([]string, len(table.Columns))
		for j, c := range table.Columns {
			if v := rec.Get(c); v != nil {
				line[j] = *v
			}
		}
		if err := w.Write(line); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	for _, b := range buckets {
		fmt.Printf("  %-12s %d\n", b.name, len(b.rows))
	}
}

// hasPlaceholder reports whether any categorical cell is null or a placeholder literal.
func hasPlaceholder(rec model.Record) bool {
	for _, c := range append([]string{model.ColCountry}, model.CategoricalColumns...) {
		v := rec.Get(c)
		if v == nil || normalize.IsPlaceholder(*v) {
			return true
		}
	}
	return false
}
