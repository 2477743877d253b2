// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ibadah/internal/http/handlers"
	"ibadah/internal/http/middleware"
	"ibadah/internal/infra"
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

type RouterDeps struct {
	Qibla     *qibla.Service
	Alignment *alignment.Tracker
	Prayer    *prayer.Service
	Habit     *habit.Service
	Ibadah    *ibadah.Service
	Quiz      *quiz.Service
	AIUsage   *aiusage.Service
	Tasbeeh   *tasbeeh.Service
	Qadha     *qadha.Service
	Progress  *progress.Service
	Zakat     *zakat.Calculator
	Verifier  infra.TokenVerifier
	Metrics   *observability.Collector
	Log       zerolog.Logger
}

// NewRouter registers public routes under /api and per-user routes under
// /api/me behind Firebase auth.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")

	qiblaHandler := handlers.NewQiblaHandler(deps.Qibla, deps.Alignment)
	api.GET("/qibla", qiblaHandler.Direction)
	api.POST("/qibla/alignment", qiblaHandler.Alignment)
	api.POST("/qibla/heading", qiblaHandler.Heading)

	prayerHandler := handlers.NewPrayerHandler(deps.Prayer)
	api.GET("/prayers/today", prayerHandler.Today)
	api.GET("/prayers/next", prayerHandler.Next)

	quizHandler := handlers.NewQuizHandler(deps.Quiz, deps.AIUsage)
	api.GET("/quiz/questions", quizHandler.Questions)

	zakatHandler := handlers.NewZakatHandler(deps.Zakat)
	api.POST("/zakat", zakatHandler.Calculate)
	api.GET("/zakat/nisab", zakatHandler.Nisab)

	me := api.Group("/me", middleware.Auth(deps.Verifier))

	habitHandler := handlers.NewHabitHandler(deps.Habit)
	me.GET("/habits", habitHandler.List)
	me.POST("/habits/:habit/toggle", habitHandler.Toggle)
	me.GET("/habits/:habit/streak", habitHandler.Status)

	ibadahHandler := handlers.NewIbadahHandler(deps.Ibadah)
	me.POST("/ibadah", ibadahHandler.Add)
	me.GET("/ibadah/today", ibadahHandler.Today)
	me.GET("/ibadah/days/:day", ibadahHandler.Day)
	me.GET("/ibadah/history", ibadahHandler.History)

	me.POST("/quiz/answers", quizHandler.Answer)
	me.GET("/quiz/score", quizHandler.Score)
	me.GET("/quiz/quota", quizHandler.Quota)
	me.POST("/quiz/generate", quizHandler.Generate)

	tasbeehHandler := handlers.NewTasbeehHandler(deps.Tasbeeh)
	me.GET("/tasbeeh", tasbeehHandler.Get)
	me.POST("/tasbeeh/increment", tasbeehHandler.Increment)
	me.POST("/tasbeeh/reset", tasbeehHandler.Reset)

	qadhaHandler := handlers.NewQadhaHandler(deps.Qadha)
	me.GET("/qadha", qadhaHandler.Get)
	me.POST("/qadha/prayers/:prayer", qadhaHandler.Adjust)
	me.POST("/qadha/reset", qadhaHandler.Reset)

	progressHandler := handlers.NewProgressHandler(deps.Progress)
	me.GET("/progress", progressHandler.Get)
	me.POST("/progress/prayer", progressHandler.LogPrayer)
	me.POST("/progress/zikr", progressHandler.LogZikr)

	return r
}
