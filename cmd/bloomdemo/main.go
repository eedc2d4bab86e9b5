// bloomdemo populates example filters and reports empirical hit and
// false positive rates against their theoretical estimates.
package main

import (
	"bloom"
	"bloom/pkg/dict"
	"flag"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

const freshWords = 10000

func populate(f *bloom.Filter) {
	for i := 0; i < f.Capacity(); i++ {
		f.Insert(strconv.Itoa(i))
	}
	fmt.Printf("added %d words\n", f.Capacity())
}

func reportHits(f *bloom.Filter) {
	hits := 0
	for i := 0; i < f.Capacity(); i++ {
		if f.Query(strconv.Itoa(i)) {
			hits++
		}
	}
	fmt.Printf("querying previously added words: %d of %d found\n", hits, f.Capacity())
}

func reportFalsePositives(f *bloom.Filter) {
	hits := 0
	for i := f.Capacity(); i < f.Capacity()+freshWords; i++ {
		if f.Query(strconv.Itoa(i)) {
			hits++
		}
	}
	fmt.Printf("querying %d fresh words: empirical false positive rate %.4f (estimate %.4f)\n",
		freshWords, float64(hits)/freshWords, f.FalsePositiveRate())
}

func runFilter(f *bloom.Filter) {
	fmt.Println(f)
	populate(f)
	reportHits(f)
	reportFalsePositives(f)
}

func runDict() {
	d, err := dict.New(1000, 0.01)
	if err != nil {
		logrus.Fatal(err)
	}
	d.Put("bloom", "a probabilistic membership filter")
	d.Put("skiplist", "an ordered map with probabilistic balancing")
	d.Put("sstable", "a sorted immutable table of key-value pairs")

	for _, w := range []string{"bloom", "sstable", "memtable", "compaction"} {
		if def, ok := d.Get(w); ok {
			fmt.Printf("  %s: %s\n", w, def)
		} else {
			fmt.Printf("  %s: not found\n", w)
		}
	}
	fmt.Printf("%d of the misses never touched the skiplist\n", d.FilteredLookups())
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	fmt.Println("example 1: 400 bits for up to 100 words")
	f1, err := bloom.New(100, 400, bloom.DefaultOption)
	if err != nil {
		logrus.Fatal(err)
	}
	runFilter(f1)

	fmt.Println("\nexample 2: up to 1000 words with a false positive rate under 0.01")
	f2, err := bloom.NewWithRate(1000, 0.01, bloom.DefaultOption)
	if err != nil {
		logrus.Fatal(err)
	}
	runFilter(f2)

	fmt.Println("\nexample 3: dictionary lookups guarded by a filter")
	runDict()
}
