package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onnuriprint/printshop-backend/api/controllers"
	"github.com/onnuriprint/printshop-backend/api/middleware"
	"github.com/onnuriprint/printshop-backend/internal/dispatch"
	"github.com/onnuriprint/printshop-backend/internal/gallery"
	"github.com/onnuriprint/printshop-backend/internal/notify"
	"github.com/onnuriprint/printshop-backend/internal/printing"
	"github.com/onnuriprint/printshop-backend/internal/quote"
	"github.com/onnuriprint/printshop-backend/internal/render"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	deps map[string]controllers.Pinger,
	registry *prometheus.Registry,
	quoteService quote.Service,
	documentService render.Service,
	printService printing.Service,
	dispatchService dispatch.Service,
	galleryService gallery.Service,
	noticeService notify.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	maxUploadBytes := int64(cfg.Gallery.MaxUploadMB) << 20

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, logg, deps))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Original storefront routes, wire-compatible with the Flask app the
	// frontend already talks to.
	r.Post("/quote", controllers.QuoteCalculate(quoteService, logg, false))
	r.Post("/calculate_price", controllers.QuoteCalculate(quoteService, logg, true))
	r.Post("/preview_quote", controllers.QuotePreview(quoteService, documentService, logg))

	r.Route("/api/photos", func(r chi.Router) {
		r.Get("/", controllers.GalleryListPhotos(galleryService, logg))
		r.With(middleware.AdminOnly(cfg.Admin.Token, logg)).
			Post("/", controllers.GalleryUploadPhoto(galleryService, logg, maxUploadBytes))
		r.With(middleware.AdminOnly(cfg.Admin.Token, logg)).
			Delete("/{photoId}", controllers.GalleryDeletePhoto(galleryService, logg))
	})

	r.Route("/api/folders", func(r chi.Router) {
		r.Get("/", controllers.GalleryListFolders(galleryService, logg))
		r.With(middleware.AdminOnly(cfg.Admin.Token, logg)).
			Post("/", controllers.GalleryCreateFolder(galleryService, logg))
		r.With(middleware.AdminOnly(cfg.Admin.Token, logg)).
			Delete("/{folderId}", controllers.GalleryDeleteFolder(galleryService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/quote", func(r chi.Router) {
			r.Post("/render", controllers.QuoteRender(documentService, logg))
			r.Get("/document/{kind}", controllers.QuoteDocument(documentService, logg))
			r.Delete("/document/{kind}", controllers.QuoteDocumentDismiss(documentService, logg))
			r.Post("/print", controllers.QuotePrint(printService, logg))
		})

		r.Post("/orders/dispatch/{channel}", controllers.OrderDispatch(dispatchService, logg))

		r.Route("/notices", func(r chi.Router) {
			r.Get("/", controllers.NoticesList(noticeService, logg))
			r.Delete("/{noticeId}", controllers.NoticeDismiss(noticeService, logg))
		})
	})

	return r
}
