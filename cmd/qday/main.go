// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command qday runs the quantum-threat classroom demonstrations: toy RSA,
// the classical factorization attacks, a classical Shor simulation, toy
// LWE encryption, a toy KEM, hash-based signatures and the classical vs
// quantum cost comparison.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/qcrypto-edu/qday/costmodel"
	"github.com/qcrypto-edu/qday/factor"
	"github.com/qcrypto-edu/qday/hashsig"
	"github.com/qcrypto-edu/qday/internal/report"
	"github.com/qcrypto-edu/qday/kem"
	"github.com/qcrypto-edu/qday/lwe"
	"github.com/qcrypto-edu/qday/sampling"
	"github.com/qcrypto-edu/qday/shor"
	"github.com/qcrypto-edu/qday/toyrsa"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	log.SetFlags(0)

	app := cli.NewApp()
	app.Name = "qday"
	app.Usage = "educational demonstrations of RSA, classical factorization attacks and post-quantum schemes"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "seed",
			Usage: "hex key for the deterministic random source (empty = fresh entropy)",
		},
		cli.StringFlag{
			Name:  "redis",
			Usage: "redis address to publish numeric results to (empty = no publishing)",
		},
	}
	app.Commands = []cli.Command{
		rsaCommand(),
		factorCommand(),
		shorCommand(),
		lweCommand(),
		kemCommand(),
		signCommand(),
		compareCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln("qday:", err)
	}
}

func newSource(c *cli.Context) (sampling.Source, error) {
	seed := c.GlobalString("seed")
	if seed == "" {
		return sampling.New()
	}
	key, err := hex.DecodeString(seed)
	if err != nil {
		return nil, errors.Wrap(err, "parse --seed")
	}
	return sampling.NewKeyed(key)
}

func newSink(c *cli.Context) (report.Sink, error) {
	addr := c.GlobalString("redis")
	if addr == "" {
		return report.NewMemorySink(), nil
	}
	sink, err := report.NewRedisSink(report.RedisConfig{Addr: addr})
	return sink, errors.Wrap(err, "connect --redis")
}

func publish(sink report.Sink, rec *report.Record) {
	if err := sink.Publish(context.Background(), rec); err != nil {
		log.Println("warning: publish result:", err)
	}
}

func rsaCommand() cli.Command {
	return cli.Command{
		Name:  "rsa",
		Usage: "generate a toy RSA keypair and run an encrypt/decrypt round trip",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "bits", Value: 10, Usage: "prime bit length"},
			cli.StringFlag{Name: "message", Value: "HI", Usage: "ASCII message for the byte-wise demo"},
		},
		Action: func(c *cli.Context) error {
			src, err := newSource(c)
			if err != nil {
				return err
			}
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			kp, err := toyrsa.NewKeyGenerator(c.Int("bits"), src).GenKeyPair()
			if err != nil {
				return err
			}
			fmt.Printf("p = %d, q = %d\n", kp.P, kp.Q)
			fmt.Printf("N = %d, phi = %d\n", kp.Public.N, kp.Phi)
			fmt.Printf("public  (e, N) = (%d, %d)\n", kp.Public.E, kp.Public.N)
			fmt.Printf("private (d, N) = (%d, %d)\n", kp.Private.D, kp.Private.N)

			enc := toyrsa.NewEncryptor(kp.Public)
			dec := toyrsa.NewDecryptor(kp.Private)

			m := uint64(42) % kp.Public.N
			ct, err := enc.Encrypt(m)
			if err != nil {
				return err
			}
			pt, err := dec.Decrypt(ct)
			if err != nil {
				return err
			}
			fmt.Printf("encrypt(%d) = %d, decrypt(%d) = %d\n", m, ct, ct, pt)

			msg := c.String("message")
			cts, err := enc.EncryptBytes([]byte(msg))
			if err != nil {
				return errors.Wrapf(err, "message %q needs a larger modulus, raise --bits", msg)
			}
			back, err := dec.DecryptBytes(cts)
			if err != nil {
				return err
			}
			fmt.Printf("message %q -> %v -> %q\n", msg, cts, string(back))

			publish(sink, &report.Record{
				Kind:    "rsa",
				Modulus: kp.Public.N,
				Bits:    c.Int("bits"),
				Success: pt == m && string(back) == msg,
			})
			return nil
		},
	}
}

// demoModulus returns the modulus to attack: the explicit --n when given,
// otherwise a fresh toy semiprime of the requested prime bit length.
func demoModulus(c *cli.Context, src sampling.Source) (uint64, error) {
	if n := c.Uint64("n"); n != 0 {
		return n, nil
	}
	kp, err := toyrsa.NewKeyGenerator(c.Int("bits"), src).GenKeyPair()
	if err != nil {
		return 0, err
	}
	fmt.Printf("generated modulus N = %d = %d * %d\n", kp.Public.N, kp.P, kp.Q)
	return kp.Public.N, nil
}

func factorCommand() cli.Command {
	return cli.Command{
		Name:  "factor",
		Usage: "attack a modulus with trial division and Pollard's rho",
		Flags: []cli.Flag{
			cli.Uint64Flag{Name: "n", Usage: "modulus to factor (0 = generate)"},
			cli.IntFlag{Name: "bits", Value: 16, Usage: "prime bit length when generating"},
			cli.Uint64Flag{Name: "bound", Usage: "trial division bound (0 = sqrt of N)"},
			cli.Uint64Flag{Name: "budget", Usage: "rho iteration budget (0 = default)"},
			cli.IntFlag{Name: "trials", Usage: "extra rho trials to profile iteration counts"},
		},
		Action: func(c *cli.Context) error {
			src, err := newSource(c)
			if err != nil {
				return err
			}
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			n, err := demoModulus(c, src)
			if err != nil {
				return err
			}

			td, tdErr := factor.TrialDivision(n, c.Uint64("bound"))
			printAttack(sink, n, td, tdErr)

			rho, rhoErr := factor.PollardRho(n, factor.Config{
				MaxIterations: c.Uint64("budget"),
				Source:        src,
			})
			printAttack(sink, n, rho, rhoErr)

			if trials := c.Int("trials"); trials > 0 {
				st, err := factor.ProfileRho(n, trials, factor.Config{
					MaxIterations: c.Uint64("budget"),
					Source:        src,
				})
				if err != nil {
					return err
				}
				fmt.Printf("rho over %d trials: mean %.1f, median %.1f, stddev %.1f iterations\n",
					st.Trials, st.Mean, st.Median, st.StdDev)
			}
			return nil
		},
	}
}

func shorCommand() cli.Command {
	return cli.Command{
		Name:  "shor",
		Usage: "factor a modulus with the classical Shor simulation",
		Flags: []cli.Flag{
			cli.Uint64Flag{Name: "n", Usage: "modulus to factor (0 = generate)"},
			cli.IntFlag{Name: "bits", Value: 10, Usage: "prime bit length when generating"},
			cli.IntFlag{Name: "attempts", Usage: "random bases to try (0 = default)"},
			cli.Uint64Flag{Name: "budget", Usage: "order finding budget (0 = default)"},
		},
		Action: func(c *cli.Context) error {
			src, err := newSource(c)
			if err != nil {
				return err
			}
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			n, err := demoModulus(c, src)
			if err != nil {
				return err
			}

			res, ferr := shor.Factor(n, shor.Config{
				Attempts:    c.Int("attempts"),
				OrderBudget: c.Uint64("budget"),
				Source:      src,
			})
			printAttack(sink, n, res, ferr)
			if ferr == nil {
				fmt.Println("order finding did the work a quantum computer would do in polynomial time")
			}
			return nil
		},
	}
}

func printAttack(sink report.Sink, n uint64, res *factor.Result, err error) {
	rec := &report.Record{Kind: "factor", Modulus: n}
	if res != nil {
		rec.Method = res.Method.String()
		rec.Iterations = res.Iterations
		rec.ElapsedUS = res.Elapsed.Microseconds()
	}
	if err != nil {
		fmt.Printf("%v\n", err)
	} else {
		rec.Success = true
		fmt.Printf("%s: %d = %d * %d (%d iterations, %v)\n",
			res.Method, n, res.P, res.Q, res.Iterations, res.Elapsed)
	}
	publish(sink, rec)
}

func lweCommand() cli.Command {
	return cli.Command{
		Name:  "lwe",
		Usage: "run the toy LWE bit encryption and measure its decode failure rate",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "dim", Value: 64, Usage: "secret dimension n"},
			cli.Uint64Flag{Name: "q", Value: 251, Usage: "modulus"},
			cli.Int64Flag{Name: "errbound", Value: 2, Usage: "key generation error bound"},
			cli.IntFlag{Name: "trials", Value: 1000, Usage: "round trips for the failure rate"},
		},
		Action: func(c *cli.Context) error {
			src, err := newSource(c)
			if err != nil {
				return err
			}
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			params, err := lwe.NewParameters(c.Int("dim"), c.Uint64("q"), c.Int64("errbound"))
			if err != nil {
				return err
			}

			kg := lwe.NewKeyGenerator(params, src)
			sk := kg.GenSecretKey()
			pk := kg.GenPublicKey(sk)
			enc := lwe.NewEncryptor(params, pk, src)
			dec := lwe.NewDecryptor(params, sk)
			for _, bit := range []int{0, 1, 1, 0, 1} {
				if err := lwe.CheckRoundTrip(enc, dec, bit); err != nil {
					fmt.Printf("bit %d: %v (expected occasionally)\n", bit, err)
				} else {
					fmt.Printf("bit %d: round trip ok\n", bit)
				}
			}

			rate, err := lwe.FailureRate(params, c.Int("trials"), src)
			if err != nil {
				return err
			}
			fmt.Printf("decode failure rate over %d trials: %.3f%%\n", c.Int("trials"), rate*100)

			publish(sink, &report.Record{
				Kind:    "lwe",
				Bits:    c.Int("dim"),
				Detail:  fmt.Sprintf("failure_rate=%.5f", rate),
				Success: true,
			})
			return nil
		},
	}
}

func kemCommand() cli.Command {
	return cli.Command{
		Name:  "kem",
		Usage: "run the toy Kyber-like key encapsulation",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "rank", Value: 2, Usage: "module rank k"},
			cli.IntFlag{Name: "len", Value: 128, Usage: "vector length n"},
			cli.Uint64Flag{Name: "q", Value: 3329, Usage: "modulus"},
		},
		Action: func(c *cli.Context) error {
			src, err := newSource(c)
			if err != nil {
				return err
			}
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			params, err := kem.NewParameters(c.Int("rank"), c.Int("len"), c.Uint64("q"))
			if err != nil {
				return err
			}

			kg := kem.NewKeyGenerator(params, src)
			pk, sk := kg.GenKeyPair()

			sent, ct := kem.NewEncapsulator(params, pk, src).Encapsulate()
			got := kem.NewDecapsulator(params, sk).Decapsulate(ct)

			fmt.Printf("sender secret:   %x\n", sent[:8])
			fmt.Printf("receiver secret: %x\n", got[:8])
			match := sent == got
			if match {
				fmt.Println("secrets match, key exchange successful")
			} else {
				fmt.Println("secrets differ: error terms overflowed the decoding margin")
			}

			publish(sink, &report.Record{Kind: "kem", Success: match})
			return nil
		},
	}
}

func signCommand() cli.Command {
	return cli.Command{
		Name:  "sign",
		Usage: "sign and verify a message with the toy hash-based signature",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "message", Value: "quantum-safe message", Usage: "message to sign"},
		},
		Action: func(c *cli.Context) error {
			sink, err := newSink(c)
			if err != nil {
				return err
			}
			defer sink.Close()

			seed, err := signingSeed(c)
			if err != nil {
				return err
			}

			priv, pub, err := hashsig.GenerateKey(seed)
			if err != nil {
				return err
			}

			msg := []byte(c.String("message"))
			sig := priv.Sign(msg)
			fmt.Printf("public key: %x\n", pub[:8])
			fmt.Printf("signature (%d bytes): %x...\n", len(sig), sig[:16])

			if err := hashsig.Verify(pub, msg, sig); err != nil {
				return err
			}
			fmt.Println("signature verifies")

			tampered := append([]byte{}, msg...)
			tampered[0] ^= 1
			if err := hashsig.Verify(pub, tampered, sig); err == nil {
				return errors.New("tampered message unexpectedly verified")
			}
			fmt.Println("tampered message rejected")

			publish(sink, &report.Record{Kind: "sign", Success: true})
			return nil
		},
	}
}

// signingSeed derives a key seed from --seed, or fresh entropy without it.
func signingSeed(c *cli.Context) ([]byte, error) {
	if seed := c.GlobalString("seed"); seed != "" {
		key, err := hex.DecodeString(seed)
		if err != nil {
			return nil, errors.Wrap(err, "parse --seed")
		}
		return key, nil
	}
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func compareCommand() cli.Command {
	return cli.Command{
		Name:  "compare",
		Usage: "compare classical (GNFS) and quantum (Shor) factoring cost across key sizes",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "sizes", Value: "512,1024,2048,4096", Usage: "comma separated key sizes in bits"},
			cli.Float64Flag{Name: "rate", Value: 1e9, Usage: "operations per second for the time estimates"},
		},
		Action: func(c *cli.Context) error {
			sizes, err := parseSizes(c.String("sizes"))
			if err != nil {
				return err
			}
			ests, err := costmodel.Estimates(sizes)
			if err != nil {
				return err
			}

			rate := c.Float64("rate")
			fmt.Printf("%-10s %-25s %-20s %s\n", "key", "classical (GNFS)", "quantum (Shor)", "speedup")
			for _, e := range ests {
				fmt.Printf("RSA-%-6d %-25s %-20s %s\n",
					e.Bits,
					costmodel.TimeAtRate(e.Classical, rate),
					costmodel.TimeAtRate(e.Quantum, rate),
					e.Speedup.Text('e', 2),
				)
			}
			return nil
		},
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		bits, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parse --sizes entry %q", p)
		}
		sizes = append(sizes, bits)
	}
	return sizes, nil
}
