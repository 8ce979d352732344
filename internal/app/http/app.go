package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/arl/statsviz"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "music_portfolio/docs"
	appmiddleware "music_portfolio/internal/middleware"
	httprouters "music_portfolio/internal/transport/http"
	"music_portfolio/internal/transport/http/dto/response"
)

// bodyLimit с запасом над лимитом загрузки, точную проверку делает сервис
const bodyLimit = "64M"

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	uploadsDir string
	uploadsURL string
}

func New(log *slog.Logger, host, port, uploadsDir, uploadsURL string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = httprouters.NewValidator()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		uploadsDir: uploadsDir,
		uploadsURL: uploadsURL,
	}
}

// Handler нужен тестам, чтобы гонять запросы без сети
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.host, s.port)
}

// Health godoc
// @Summary Проверка живости
// @Tags Служебное
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", health)
	s.e.GET("/metrics", echoprometheus.NewHandler())

	if s.uploadsDir != "" {
		s.e.Static(s.uploadsURL, s.uploadsDir)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz", func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, "/debug/statsviz/")
		})
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.e.Group("/api")
	s.routers.Register(api)
}
