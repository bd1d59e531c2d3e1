package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"kix/config"
	"kix/internal/delivery"
	"kix/internal/delivery/http"
	"kix/internal/delivery/http/middleware"
	"kix/internal/delivery/http/router/handler"
	"kix/internal/domain/service"
	"kix/internal/infra/auth"
	"kix/internal/infra/localstore"
	logs "kix/internal/infra/log"
	"kix/internal/infra/payment"
	"kix/internal/infra/persistence/postgres"
	"kix/internal/infra/pubsub"
	"kix/internal/infra/qrcode"
	"kix/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewFavoritesRepository,
			postgres.NewOrderRepository,
			postgres.NewPromoRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
			localstore.NewGuestStateRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityVerifier,
			payment.NewPaymentGateway,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier creates the federated sign-in verifier with dependency injection
func newIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, nil // Federated sign-in is optional
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase verifier: %w", err)
	}

	return verifier, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewStateSyncService,
			impl.NewCartService,
			impl.NewFavoritesService,
			impl.NewCatalogService,
			impl.NewReviewService,
			impl.NewPromoService,
			impl.NewCheckoutService,
			impl.NewPaymentService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewDeviceMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSyncHandler,
			handler.NewCartHandler,
			handler.NewFavoritesHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewPromoHandler,
			handler.NewCheckoutHandler,
			handler.NewPaymentHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
