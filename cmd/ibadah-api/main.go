// README: Entry point; loads config, wires services and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"ibadah/internal/ai"
	"ibadah/internal/config"
	httptransport "ibadah/internal/http"
	"ibadah/internal/infra"
	"ibadah/internal/maps"
	"ibadah/internal/modules/aiusage"
	"ibadah/internal/modules/alignment"
	"ibadah/internal/modules/habit"
	"ibadah/internal/modules/ibadah"
	"ibadah/internal/modules/prayer"
	"ibadah/internal/modules/progress"
	"ibadah/internal/modules/qadha"
	"ibadah/internal/modules/qibla"
	"ibadah/internal/modules/quiz"
	"ibadah/internal/modules/tasbeeh"
	"ibadah/internal/modules/zakat"
	"ibadah/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := infra.NewLogger("info", "json")
		bootLog.Fatal().Err(err).Msg("config")
	}
	log := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewCollector(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics init")
	}

	if cfg.Firebase.ProjectID == "" {
		log.Fatal().Msg("IBADAH_FIREBASE_PROJECT_ID is required")
	}
	app, err := infra.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase init")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase auth init")
	}
	docs, err := infra.NewFirestoreStore(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init")
	}
	defer docs.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres init")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable; caches will miss")
	}

	qiblaSvc := qibla.NewService(qibla.NewStore(redisClient), newGeocoder(cfg.Maps.APIKey, log), metrics, log)

	alignCfg := alignment.DefaultConfig()
	alignCfg.ThresholdDegrees = cfg.Alignment.ThresholdDegrees
	tracker, err := alignment.NewTracker(alignCfg, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("alignment init")
	}

	aladhan := prayer.NewAladhanClient(cfg.Prayer.AladhanURL, cfg.Prayer.Method, &http.Client{Timeout: 10 * time.Second})
	prayerSvc := prayer.NewService(prayer.NewStore(redisClient), aladhan, metrics, log)

	habitSvc := habit.NewService(docs)

	ibadahStore := ibadah.NewStore(dbPool)
	if err := ibadahStore.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("ibadah schema")
	}
	ibadahSvc := ibadah.NewService(ibadahStore)

	var generator ai.QuestionGenerator
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini init")
		}
		defer gemini.Close()
		generator = gemini
	} else {
		log.Info().Msg("GEMINI_API_KEY not set; quiz generation disabled")
	}
	quizSvc := quiz.NewService(docs, generator, metrics, log)

	usageStore := aiusage.NewStore(dbPool)
	if err := usageStore.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("ai_usage schema")
	}
	usageSvc := aiusage.NewService(usageStore)

	zakatCalc, err := zakat.NewCalculator(zakat.Nisab{Gold: cfg.Zakat.GoldNisab, Silver: cfg.Zakat.SilverNisab})
	if err != nil {
		log.Fatal().Err(err).Msg("zakat init")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Qibla:     qiblaSvc,
		Alignment: tracker,
		Prayer:    prayerSvc,
		Habit:     habitSvc,
		Ibadah:    ibadahSvc,
		Quiz:      quizSvc,
		AIUsage:   usageSvc,
		Tasbeeh:   tasbeeh.NewService(docs),
		Qadha:     qadha.NewService(docs),
		Progress:  progress.NewService(docs),
		Zakat:     zakatCalc,
		Verifier:  verifier,
		Metrics:   metrics,
		Log:       log,
	})

	server := httptransport.NewServer(cfg.HTTP.Addr, router)
	if err := httptransport.Serve(ctx, server, log); err != nil {
		log.Fatal().Err(err).Msg("http server")
	}
}

// newGeocoder returns nil when no Maps key is configured; Qibla lookups then
// carry no city name.
func newGeocoder(apiKey string, log zerolog.Logger) qibla.ReverseGeocoder {
	if apiKey == "" {
		log.Info().Msg("IBADAH_MAPS_API_KEY not set; city lookup disabled")
		return nil
	}
	g, err := maps.NewGeocodeService(apiKey)
	if err != nil {
		log.Warn().Err(err).Msg("maps client init failed; city lookup disabled")
		return nil
	}
	return g
}
