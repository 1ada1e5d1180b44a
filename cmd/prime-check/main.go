// Copyright (c) 2026 SiestaCat
//
// MIT License

// Command prime-check is the command-line front end of the primality
// engine: it owns argument parsing, file I/O and rendering, all of which
// stay outside the library core.
package main

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	prime "github.com/SiestaCat/prime-number"
)

var (
	flagAlgorithm string
	flagRounds    int
	flagUseGPU    bool
	flagVerbose   bool
	flagOutput    string
	flagWorkers   int
	flagBits      int
	flagCount     int
	flagMersenne  bool
)

func main() {
	root := &cobra.Command{
		Use:     "prime-check",
		Short:   "High-performance prime number checker for very large numbers",
		Version: prime.Version,
	}
	root.AddCommand(checkCmd(), batchCmd(), generateCmd(), infoCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

// setupLogging installs a development zap logger on the library when
// --verbose is set.
func setupLogging() {
	if flagVerbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			prime.SetLogger(l)
		}
	}
}

func testOptions(progress bool) ([]prime.Option, error) {
	alg, err := prime.ParseAlgorithm(flagAlgorithm)
	if err != nil {
		return nil, err
	}
	opts := []prime.Option{prime.Use(alg), prime.Rounds(flagRounds)}
	if flagUseGPU {
		if prime.AcceleratorAvailable() {
			opts = append(opts, prime.WithAccelerator(prime.DefaultAccelerator()))
		} else {
			fmt.Fprintln(os.Stderr, "Warning: GPU requested but not available. Using CPU.")
		}
	}
	if progress {
		opts = append(opts, prime.WithProgress(renderProgress))
	}
	return opts, nil
}

// renderProgress draws a single carriage-return progress line on stderr
// with two-decimal percentage precision.
func renderProgress(e prime.ProgressEvent) bool {
	pct := 100 * float64(e.Completed) / float64(e.Total)
	fmt.Fprintf(os.Stderr, "\r%-32s %6.2f%% [%s]", e.Label, pct, e.Elapsed.Truncate(time.Second))
	if e.Completed == e.Total {
		fmt.Fprintln(os.Stderr)
	}
	return true
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check NUMBER",
		Short: "Check if a number is prime",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			opts, err := testOptions(flagVerbose)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			c, err := prime.Parse(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			if flagVerbose {
				fmt.Printf("Number has %d decimal digits (%d bits)\n", len(c.Value.Text(10)), c.Bits())
			}
			start := time.Now()
			v := prime.Check(c, opts...)
			elapsed := time.Since(start)
			if flagVerbose {
				fmt.Printf("Computation time: %.3f seconds\n", elapsed.Seconds())
			}
			switch {
			case v.Kind == prime.Invalid:
				fmt.Fprintln(os.Stderr, "Error:", v.Reason)
				os.Exit(2)
			case v.IsPrime():
				fmt.Println(renderVerdict(v))
				os.Exit(0)
			default:
				fmt.Println(renderVerdict(v))
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "auto", "algorithm to use (auto, miller-rabin, lucas, bpsw, lucas-lehmer)")
	cmd.Flags().IntVarP(&flagRounds, "rounds", "r", 20, "number of rounds for Miller-Rabin")
	cmd.Flags().BoolVarP(&flagUseGPU, "use-gpu", "g", false, "use GPU acceleration if available")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	return cmd
}

func renderVerdict(v prime.Verdict) string {
	switch v.Kind {
	case prime.Prime:
		return "PRIME"
	case prime.ProbablyPrime:
		if v.Confidence < 1 {
			return fmt.Sprintf("PRIME (probabilistic, confidence %.10f)", v.Confidence)
		}
		return "PRIME (probabilistic)"
	case prime.Composite:
		return "COMPOSITE"
	}
	return "ERROR: " + v.Reason
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Check multiple numbers from a file, one per line",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			opts, err := testOptions(flagVerbose)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			lines, err := readLines(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			opts = append(opts, prime.Workers(flagWorkers))
			report := prime.NewRunner(opts...).Run(lines)

			out := os.Stdout
			if flagOutput != "" {
				f, err := os.Create(flagOutput)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
					os.Exit(2)
				}
				defer f.Close()
				out = f
			}
			for _, it := range report.Items {
				fmt.Fprintf(out, "%s\t%s\n", it.Raw, renderVerdict(it.Verdict))
			}

			fmt.Println("\nSummary:")
			fmt.Printf("  Prime:     %d\n", report.PrimeCount)
			fmt.Printf("  Composite: %d\n", report.CompositeCount)
			fmt.Printf("  Errors:    %d\n", report.ErrorCount)
			if t, err := report.Timing(); err == nil {
				fmt.Printf("  Timing:    mean %s, median %s, max %s (total %s)\n",
					t.Mean, t.Median, t.Max, report.Elapsed.Truncate(time.Millisecond))
			}
		},
	}
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "auto", "algorithm to use")
	cmd.Flags().IntVarP(&flagRounds, "rounds", "r", 20, "number of rounds for Miller-Rabin")
	cmd.Flags().BoolVarP(&flagUseGPU, "use-gpu", "g", false, "use GPU acceleration if available")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file for results")
	cmd.Flags().IntVarP(&flagWorkers, "workers", "w", 1, "number of concurrent items")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random probable prime numbers",
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			var out []string
			for i := 0; i < flagCount; i++ {
				if flagMersenne {
					p, m := mersenneCandidateAbove(flagBits)
					fmt.Printf("Generated M%d = 2^%d - 1 (%d digits)\n", p, p, len(m.Text(10)))
					out = append(out, fmt.Sprintf("2^%d-1", p))
					continue
				}
				n, err := prime.RandomProbablePrime(nil, flagBits)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
					os.Exit(2)
				}
				s := n.Text(10)
				if len(s) > 50 {
					fmt.Printf("Generated: %s... (%d bits)\n", s[:50], n.BitLen())
				} else {
					fmt.Printf("Generated: %s (%d bits)\n", s, n.BitLen())
				}
				out = append(out, s)
			}
			if flagOutput != "" {
				if err := os.WriteFile(flagOutput, []byte(strings.Join(out, "\n")+"\n"), 0o644); err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
					os.Exit(2)
				}
				fmt.Printf("Saved %d candidates to %s\n", len(out), flagOutput)
			}
		},
	}
	cmd.Flags().IntVarP(&flagBits, "bits", "b", 256, "bit length of the prime")
	cmd.Flags().IntVarP(&flagCount, "count", "c", 1, "number of primes to generate")
	cmd.Flags().BoolVarP(&flagMersenne, "mersenne", "m", false, "generate Mersenne prime candidates")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	return cmd
}

// mersenneCandidateAbove picks a random prime exponent p until the
// Mersenne number 2^p - 1 reaches the requested bit length, and returns
// both. The exponent itself must be prime for the candidate to have any
// chance.
func mersenneCandidateAbove(bits int) (int, *big.Int) {
	// the exponent p must itself reach the target bit count, so draw it
	// one binary order of magnitude above
	expBits := big.NewInt(int64(bits)).BitLen() + 1
	if expBits < 7 {
		expBits = 7
	}
	if expBits > 24 {
		expBits = 24
	}
	for {
		e, err := prime.RandomProbablePrime(nil, expBits)
		if err != nil {
			continue
		}
		p := int(e.Int64())
		m := prime.MersenneCandidate(p)
		if m.BitLen() >= bits {
			return p, m
		}
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display engine information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Prime Number Checker v" + prime.Version)
			if prime.AcceleratorAvailable() {
				fmt.Println("Accelerator: available")
			} else {
				fmt.Println("Accelerator: not available")
			}
			fmt.Println("Max integer precision: unlimited (math/big)")
			fmt.Println("Supported algorithms:")
			fmt.Println("  - Miller-Rabin")
			fmt.Println("  - Lucas")
			fmt.Println("  - Baillie-PSW")
			fmt.Println("  - Lucas-Lehmer")
		},
	}
}
