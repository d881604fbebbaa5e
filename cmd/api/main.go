package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"mtaanimarket/internal/adapter/api"
	"mtaanimarket/internal/adapter/api/handler"
	apimiddleware "mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/adapter/api/router"
	"mtaanimarket/internal/adapter/repository"
	"mtaanimarket/internal/infrastructure/ws"
	"mtaanimarket/internal/usecase"
	"mtaanimarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)

	hub := ws.NewHub()
	hub.Start(ctx)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, hub)
	reputationUseCase := usecase.NewReputationUseCase(userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, wishlistRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, notificationUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, orderRepo, userRepo, reputationUseCase, notificationUseCase)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo, productRepo, userRepo, cfg.CurrencyLabel)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderRepo, productRepo, contactRepo, userRepo)

	handler.Setup(
		userUseCase,
		productUseCase,
		orderUseCase,
		reviewUseCase,
		notificationUseCase,
		wishlistUseCase,
		contactUseCase,
		analyticsUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)
	router.SetupBadgeStreamRouter(e, handler.NewBadgeStreamHandler(hub, authMiddleware))

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
