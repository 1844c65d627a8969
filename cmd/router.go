package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/cancel_booking"
	cancelSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/cancel_subscription"
	createBookingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/create_booking"
	createSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/create_subscription"
	getAvailableSlotsHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_booking"
	getCourtHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_court"
	getCourtBookingsHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_court_bookings"
	getQuoteHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_quote"
	getSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_subscription"
	getUserBookingsHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_user_bookings"
	getUserSubscriptionsHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/get_user_subscriptions"
	listCourtsHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/list_courts"
	overrideBookingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/override_booking"
	overrideSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/override_subscription"
	reactivateBookingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/reactivate_booking"
	reactivateSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/reactivate_subscription"
	renewSubscriptionHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/renew_subscription"
	sweepExpiredHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/sweep_expired"
	updateCourtPricingHandler "github.com/Brian13b/QuicoBasquetProject/internal/api/handlers/update_court_pricing"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/config"
	bookingsService "github.com/Brian13b/QuicoBasquetProject/internal/service/bookings"
	courtsService "github.com/Brian13b/QuicoBasquetProject/internal/service/courts"
	subscriptionsService "github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions"
	adminOverrideUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
	cancelSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/cancel_subscription"
	createBookingUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_booking"
	createSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_subscription"
	getAvailableSlotsUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/get_available_slots"
	reactivateBookingUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_booking"
	reactivateSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_subscription"
	renewSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/renew_subscription"
	sweepExpiredUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/sweep_expired"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
	"github.com/Brian13b/QuicoBasquetProject/pkg/metrics"
)

type services struct {
	bookings      *bookingsService.Service
	subscriptions *subscriptionsService.Service
	courts        *courtsService.Service
}

type useCases struct {
	createBooking          *createBookingUC.UseCase
	reactivateBooking      *reactivateBookingUC.UseCase
	createSubscription     *createSubscriptionUC.UseCase
	cancelSubscription     *cancelSubscriptionUC.UseCase
	reactivateSubscription *reactivateSubscriptionUC.UseCase
	renewSubscription      *renewSubscriptionUC.UseCase
	sweepExpired           *sweepExpiredUC.UseCase
	adminOverride          *adminOverrideUC.UseCase
	availableSlots         *getAvailableSlotsUC.UseCase
}

func newRouter(cfg *config.Config, log *logger.Logger, m *metrics.Metrics, svc services, uc useCases) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log))

	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes; a caller identity, when forwarded, personalises quotes
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	public.HandleFunc("/courts", listCourtsHandler.NewHandler(svc.courts, log).Handle).Methods(http.MethodGet)
	public.HandleFunc("/courts/{courtId}", getCourtHandler.NewHandler(svc.courts, log).Handle).Methods(http.MethodGet)
	public.HandleFunc("/courts/{courtId}/available-slots",
		getAvailableSlotsHandler.NewHandler(uc.availableSlots, log).Handle).Methods(http.MethodGet)
	public.HandleFunc("/courts/{courtId}/quote", getQuoteHandler.NewHandler(svc.courts, log).Handle).Methods(http.MethodGet)

	// Admin routes, registered before the protected catch-all prefix
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	admin.HandleFunc("/bookings/{bookingId}",
		overrideBookingHandler.NewHandler(uc.adminOverride, log).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/subscriptions/sweep",
		sweepExpiredHandler.NewHandler(uc.sweepExpired, log).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/subscriptions/{subscriptionId}",
		overrideSubscriptionHandler.NewHandler(uc.adminOverride, log).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/courts/{courtId}/pricing",
		updateCourtPricingHandler.NewHandler(svc.courts, log).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{courtId}/bookings",
		getCourtBookingsHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)

	// Protected routes (X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/bookings", createBookingHandler.NewHandler(uc.createBooking, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel",
		cancelBookingHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reactivate",
		reactivateBookingHandler.NewHandler(uc.reactivateBooking, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings",
		getUserBookingsHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)

	// Subscriptions
	protected.HandleFunc("/subscriptions",
		createSubscriptionHandler.NewHandler(uc.createSubscription, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/subscriptions/{subscriptionId}",
		getSubscriptionHandler.NewHandler(svc.subscriptions, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/subscriptions/{subscriptionId}/cancel",
		cancelSubscriptionHandler.NewHandler(uc.cancelSubscription, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/subscriptions/{subscriptionId}/reactivate",
		reactivateSubscriptionHandler.NewHandler(uc.reactivateSubscription, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/subscriptions/{subscriptionId}/renew",
		renewSubscriptionHandler.NewHandler(uc.renewSubscription, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/subscriptions",
		getUserSubscriptionsHandler.NewHandler(svc.subscriptions, log).Handle).Methods(http.MethodGet)

	return r
}
