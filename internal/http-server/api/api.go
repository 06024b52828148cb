package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sportmaps/internal/config"
	"sportmaps/internal/http-server/handlers/class"
	"sportmaps/internal/http-server/handlers/errors"
	"sportmaps/internal/http-server/handlers/payment"
	"sportmaps/internal/http-server/handlers/recommend"
	"sportmaps/internal/http-server/handlers/student"
	"sportmaps/internal/http-server/middleware/logging"
	"sportmaps/internal/http-server/middleware/timeout"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	student.Core
	class.Core
	payment.Core
	recommend.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(logging.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api", func(api chi.Router) {
		// the events socket stays open past any request deadline, so the
		// timeout middleware wraps only the REST routes
		api.Get("/events/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, log, w, r)
		})

		api.Group(func(api chi.Router) {
			api.Use(timeout.Timeout(15))

			api.Route("/students", func(r chi.Router) {
				r.Post("/", student.Create(log, handler))
				r.Get("/", student.List(log, handler))
				r.Post("/bulk", student.BulkImport(log, handler))
				r.Get("/stats/{school_id}", student.Stats(log, handler))
				r.Get("/{student_id}", student.Get(log, handler))
				r.Put("/{student_id}", student.Update(log, handler))
				r.Delete("/{student_id}", student.Delete(log, handler))
			})
			api.Route("/classes", func(r chi.Router) {
				r.Post("/", class.Create(log, handler))
				r.Get("/", class.List(log, handler))
				r.Get("/stats/{school_id}", class.Stats(log, handler))
				r.Get("/{class_id}", class.Get(log, handler))
				r.Put("/{class_id}", class.Update(log, handler))
				r.Delete("/{class_id}", class.Delete(log, handler))
				r.Post("/{class_id}/enroll", class.Enroll(log, handler))
				r.Delete("/{class_id}/enroll/{student_id}", class.Unenroll(log, handler))
				r.Get("/{class_id}/students", class.Students(log, handler))
			})
			api.Route("/payments", func(r chi.Router) {
				r.Post("/create-intent", payment.CreateIntent(log, handler))
				r.Post("/process-demo-payment/{intent_id}", payment.ProcessDemo(log, handler))
				r.Get("/transactions/{student_id}", payment.Transactions(log, handler))
				r.Get("/subscriptions/{student_id}", payment.Subscriptions(log, handler))
				r.Get("/school-transactions/{school_id}", payment.SchoolTransactions(log, handler))
				r.Post("/webhook", payment.Webhook(log, handler))
				r.Post("/cancel-subscription/{subscription_id}", payment.CancelSubscription(log, handler))
			})
			api.Post("/recommendations", recommend.Generate(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
