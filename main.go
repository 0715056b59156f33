package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/transitlab/sitp-routing/config"
	"github.com/transitlab/sitp-routing/dataset"
	"github.com/transitlab/sitp-routing/router"
)

var (
	dataPathStr = flag.String("data", "", "network dataset [format: {fspath} or {db}.{col}] (empty means embedded fallback)")
	mongoURI    = flag.String("mongo_uri", "", "mongo db uri (only used when -data is {db}.{col})")
	configPath  = flag.String("config", "", "config file path (empty means config.yml if present)")
	listenAddr  = flag.String("listen", "", "HTTP listening address (empty means one-shot query mode)")
	logLevel    = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")

	// one-shot query mode
	fromStop     = flag.String("from", "Portal del Norte", "start stop")
	toStop       = flag.String("to", "Portal Suba", "goal stop")
	criterionStr = flag.String("criterion", "", "optimization criterion [time, hops, transfers] (empty means configured default)")

	// performance
	benchmark = flag.Bool("benchmark", false, "benchmark mode")
	pprofAddr = flag.String("pprof", "", "pprof listening address (empty means disabled)")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}

	log = logrus.WithField("module", "main")
)

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}

	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	data, err := dataset.Load(context.Background(), *dataPathStr, *mongoURI)
	if err != nil {
		log.Fatalf("invalid dataset: %s", err)
	}
	r, err := router.New(data, router.Calibration{
		HeuristicMinPerKm: config.Config.Cost.HeuristicMinPerKm,
		HopTransferWeight: config.Config.Cost.HopTransferWeight,
		MaxVisitedStates:  config.Config.Cost.MaxVisitedStates,
	})
	if err != nil {
		log.Fatalf("invalid network: %s", err)
	}

	if *pprofAddr != "" {
		startHTTPDebugger(*pprofAddr)
	}

	if *benchmark {
		runBenchmark(r)
		return
	}

	addr := *listenAddr
	if addr == "" {
		addr = config.Config.Server.Listen
	}
	if addr == "" {
		// one-shot query mode
		os.Exit(runQuery(r))
	}

	server := NewPlannerServer(r)
	m := mux.NewRouter()
	server.RegisterRoutes(m)
	s := &http.Server{
		Addr:    addr,
		Handler: m,
	}

	// graceful shutdown on ctrl+c / kill
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("stopping...")
		go func() {
			<-signalCh
			os.Exit(1) // force quit on the second signal
		}()
		s.Close()
		server.Close()
		os.Exit(0)
	}()

	log.Infof("server listening at %v", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to serve: %v", err)
	}
	time.Sleep(1 * time.Second) // wait out the graceful shutdown
	log.Info("route planner closes")
}

// runQuery plans a single itinerary and prints it.
func runQuery(r *router.Router) int {
	selector := *criterionStr
	if selector == "" {
		selector = config.Config.Cost.DefaultCriterion
	}
	criterion, err := router.ParseCriterion(selector)
	if err != nil {
		log.Errorf("%s", err)
		return 1
	}
	it, err := r.Search(*fromStop, *toStop, criterion)
	if errors.Is(err, router.ErrUnknownStop) {
		fmt.Println("Unknown stop. Available:")
		for _, s := range r.Stops() {
			fmt.Println(" -", s)
		}
		return 1
	} else if err != nil {
		log.Errorf("search failed: %s", err)
		return 1
	}
	fmt.Printf("Optimal route (criterion: %s):\n", criterion)
	fmt.Println(FormatItinerary(it))
	return 0
}
