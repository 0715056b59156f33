package main

import (
	"flag"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/transitlab/sitp-routing/router"
)

var (
	benchmarkCount = flag.Int("benchmark.count", 1000, "the random routing count for benchmark")
	benchmarkSeed  = flag.Int64("benchmark.seed", 0, "the seed for benchmark")
	benchmarkCPU   = flag.Int("benchmark.cpu", 1, "the cpu count for benchmark")
)

type benchmarkQuery struct {
	from, to  string
	criterion router.Criterion
}

func runBenchmark(r *router.Router) {
	log.Logger.SetLevel(logrus.WarnLevel)
	e := rand.New(rand.NewSource(*benchmarkSeed))
	stops := r.Stops()
	criteria := []router.Criterion{router.CriterionTime, router.CriterionHops, router.CriterionTransfers}
	// random (start, goal, criterion) queries over the loaded network
	reqs := make([]benchmarkQuery, *benchmarkCount)
	for i := 0; i < *benchmarkCount; i++ {
		reqs[i] = benchmarkQuery{
			from:      stops[e.Intn(len(stops))],
			to:        stops[e.Intn(len(stops))],
			criterion: criteria[e.Intn(len(criteria))],
		}
	}

	start := time.Now()
	var wg sync.WaitGroup
	var success atomic.Int32
	if *benchmarkCPU == 1 {
		for _, req := range reqs {
			it, err := r.Search(req.from, req.to, req.criterion)
			if err != nil {
				log.Error("benchmark failed, err:", err)
				continue
			}
			if it.Found {
				success.Add(1)
			}
		}
	} else {
		runtime.GOMAXPROCS(*benchmarkCPU)
		wg.Add(*benchmarkCount)
		for _, req := range reqs {
			go func(req benchmarkQuery) {
				defer wg.Done()
				it, err := r.Search(req.from, req.to, req.criterion)
				if err != nil {
					log.Error("benchmark failed, err:", err)
					return
				}
				if it.Found {
					success.Add(1)
				}
			}(req)
		}
		wg.Wait()
	}
	timeCost := time.Since(start) * time.Duration(*benchmarkCPU)
	log.Error(
		"benchmark finished", "\n",
		"count:", *benchmarkCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(*benchmarkCount), "\n",
		"success:", success.Load(), "\n",
	)
}
