package wideint

import (
	"flag"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "wideint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "wideint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "wideint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "wideint.fuzztype", "Fuzz type (u128, u256) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

func accU128FromBigInt(b *big.Int) U128 {
	u, acc := U128FromBigInt(b)
	if !acc {
		panic(errors.Errorf("wideint: inaccurate conversion to U128 in fuzz tester for %s", b))
	}
	return u
}

func accU256FromBigInt(b *big.Int) U256 {
	u, acc := U256FromBigInt(b)
	if !acc {
		panic(errors.Errorf("wideint: inaccurate conversion to U256 in fuzz tester for %s", b))
	}
	return u
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigU returns a random value of up to width bits. The bit length is
// chosen uniformly first so that small values are as likely as large ones.
func randomBigU(rng *rand.Rand, width int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(width+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v = v.Rand(rng, new(big.Int).Lsh(big1, uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}

func randomBigU128(rng *rand.Rand) *big.Int { return randomBigU(rng, 128) }
func randomBigU256(rng *rand.Rand) *big.Int { return randomBigU(rng, 256) }

// wrapBig reduces rb modulo wrap, simulating over/underflow.
func wrapBig(rb, wrap *big.Int) *big.Int {
	return new(big.Int).Mod(rb, wrap)
}
