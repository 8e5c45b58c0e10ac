package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"handeval-server/internal/rng"
	"handeval-server/pkg/deck"
	"handeval-server/pkg/poker"
)

var command = flag.String("c", "eval", "specifies the command (eval, deal)")
var seed = flag.Int64("seed", 0, "seed for the deal command, 0 uses a cryptographic source")
var count = flag.Int("n", 1, "number of hands for the deal command")

func main() {
	flag.Parse()

	switch *command {
	case "eval":
		if flag.NArg() > 0 {
			if !printEvaluation(strings.Join(flag.Args(), " ")) {
				os.Exit(1)
			}
			return
		}

		if !evaluateLines(os.Stdin, term.IsTerminal(int(os.Stdin.Fd()))) {
			os.Exit(1)
		}

	case "deal":
		var gen rng.Generator = rng.Crypto{}
		if *seed != 0 {
			gen = rng.NewSeeded(*seed)
		}

		if !dealHands(gen, *count) {
			os.Exit(1)
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// evaluateLines evaluates one hand per line until EOF or an empty line
// Returns false if any line was not a valid hand
func evaluateLines(r io.Reader, interactive bool) bool {
	ok := true
	reader := bufio.NewReader(r)
	for {
		if interactive {
			pterm.Print("Hand: ")
		}

		str, err := reader.ReadString('\n')
		str = strings.TrimRight(str, "\r\n")
		if str != "" {
			ok = printEvaluation(str) && ok
		}

		if err != nil || (str == "" && interactive) {
			if err != nil && err != io.EOF {
				logrus.WithError(err).Warn("could not read hand")
			}

			return ok
		}
	}
}

// dealHands deals and evaluates n hands
// Returns false if any dealt hand could not be evaluated
func dealHands(gen rng.Generator, n int) bool {
	ok := true
	for i := 0; i < n; i++ {
		ok = printEvaluation(deck.NewRandomHand(gen).String()) && ok
	}

	return ok
}

func printEvaluation(line string) bool {
	hand, rank, err := evaluate(line)
	if err != nil {
		pterm.Error.Printfln("%s: %v", line, err)
		return false
	}

	pterm.Info.Printfln("%s: %s", hand.String(), rank.String())
	return true
}

// evaluate parses tokens separated by commas or whitespace and ranks them
func evaluate(line string) (deck.Hand, poker.HandRanking, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	hand, err := deck.ParseHand(tokens)
	if err != nil {
		return nil, 0, err
	}

	rank, err := poker.Evaluate(hand)
	if err != nil {
		return nil, 0, err
	}

	return hand, rank, nil
}
