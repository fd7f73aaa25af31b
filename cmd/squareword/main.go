package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/squareword"
	"crosswarped.com/squareword/internal/vocabulary"
	"crosswarped.com/squareword/pkg/primitives"
)

func main() {
	freqCSV := flag.String("freq-csv", "unigram_freq.csv", "CSV file whose first column is words, sorted most popular first")
	dictFile := flag.String("dictionary", "scrabble_words.txt", "Text file of valid words, one per line")

	topN := flag.Int("top-n", 5000, "Cutoff for N most popular words to use")
	wordLength := flag.Int("word-length", 5, "Length of words to use (also the square side length)")

	firstOnly := flag.Bool("first", false, "Only generate the first square")
	doAll := flag.Bool("all", false, "Generate all squares without prompting")
	maxSquares := flag.Int("max", 0, "Stop after this many squares (0 = no cap)")
	uniqueOnly := flag.Bool("unique-only", false, "Print only squares with no repeated row word")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the search")
	verbose := flag.Bool("verbose", false, "Trace every search step")
	benchmark := flag.Bool("benchmark", false, "Measure squares/sec for 10 seconds instead of printing squares")

	profile := flag.Bool("profile", false, "Profile the generator")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if *firstOnly && *doAll {
		log.Fatal().Msg("cannot use both -first and -all")
	}

	words, err := loadWorkingWords(*freqCSV, *dictFile, *wordLength, *topN)
	if err != nil {
		log.Fatal().Err(err).Msg("loading vocabulary")
	}
	log.Info().Int("words", len(words)).Int("word_length", *wordLength).Msg("vocabulary ready")
	if len(words) == 0 {
		fmt.Printf("No usable %d-letter words; nothing to do.\n", *wordLength)
		return
	}
	logSample(words)

	trie, err := primitives.NewTrie(words, *wordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("building trie")
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memory profile file")
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	var observer squareword.SearchObserver
	if *verbose {
		observer = squareword.LogObserver{Logger: log.Logger}
	}

	if *benchmark {
		runBenchmark(trie, observer)
		return
	}

	gen := squareword.CreateGenerator(trie, *maxSquares, observer)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	count := 0
	for sq := range gen.FindSquares(ctx) {
		if *uniqueOnly && !sq.WordsAreUnique() {
			continue
		}
		count++

		fmt.Println("--------------------------------")
		fmt.Println(sq.Repr())

		if *firstOnly {
			break
		}

		if *doAll {
			continue
		}

		// Wait for user input: continue (any key), stop (n), or show
		// debug state (s).
		fmt.Print("Continue? [Y/n]: ")
		var input string
		fmt.Scanln(&input)
		if input == "s" || input == "S" {
			fmt.Println(sq.DebugString())
		}
		if input == "n" || input == "N" {
			break
		}
	}

	fmt.Println("--------------------------------")
	fmt.Printf("Made %d squares\n", count)

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if ctx.Err() != nil {
		log.Warn().Err(ctx.Err()).Msg("search stopped early")
	}
}

func loadWorkingWords(freqCSV, dictFile string, wordLength, topN int) ([]string, error) {
	ff, err := os.Open(freqCSV)
	if err != nil {
		return nil, err
	}
	defer ff.Close()

	df, err := os.Open(dictFile)
	if err != nil {
		return nil, err
	}
	defer df.Close()

	return vocabulary.WorkingWords(ff, df, wordLength, topN)
}

// logSample shows some of the top and bottom picked words.
func logSample(words []string) {
	const sample = 5
	if len(words) <= 2*sample {
		log.Info().Strs("words", words).Msg("working words")
		return
	}
	log.Info().
		Strs("top", words[:sample]).
		Strs("bottom", words[len(words)-sample:]).
		Msg("working words sample")
}

// runBenchmark counts how many squares the search can produce in 10 seconds.
func runBenchmark(trie *primitives.Trie, observer squareword.SearchObserver) {
	const duration = 10 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	gen := squareword.CreateGenerator(trie, 0, observer)

	start := time.Now()
	squares := 0
	for range gen.FindSquares(ctx) {
		squares++
	}
	elapsed := time.Since(start)

	fmt.Printf("Ran %d squares in %.1f sec, or %.0f squares/sec\n",
		squares, elapsed.Seconds(), float64(squares)/elapsed.Seconds())
}
