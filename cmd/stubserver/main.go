// Command stubserver runs the in-memory backend stand-in so the console
// can be developed without the real API.
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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/stubserver"
	"github.com/yashwalhekar/adminpanelfrontend/pkg/logger"
)

func main() {
	_ = godotenv.Load(".env")

	addr := flag.String("addr", ":5000", "listen address")
	seed := flag.Bool("seed", true, "seed demo data")
	flag.Parse()

	if err := logger.Init("info", true); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	srv := stubserver.New(log)
	if *seed {
		seedDemoData(srv)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv))

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("stub backend listening",
			zap.String("addr", *addr),
			zap.String("login", stubserver.DefaultCredentials.Email),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	log.Info("shut down cleanly")
}

func seedDemoData(srv *stubserver.Server) {
	srv.Seed("ads", map[string]any{
		"title":     "Summer Sale",
		"imageUrl":  "/uploads/summer.png",
		"startDate": "2025-06-01",
		"endDate":   "2025-08-31",
		"isActive":  true,
	})
	srv.Seed("ads", map[string]any{
		"title":     "Winter Launch",
		"imageUrl":  "/uploads/winter.png",
		"startDate": "2025-12-01",
		"endDate":   "2026-01-31",
		"isActive":  false,
	})
	srv.Seed("tagline", map[string]any{
		"text":      "Build better habits",
		"startDate": "2025-01-01",
		"endDate":   "2025-12-31",
		"isActive":  true,
	})
	srv.Seed("testimonials", map[string]any{
		"fullName":     "Priya Sharma",
		"city":         "Pune",
		"country":      "India",
		"feedbackText": "The program changed how our team works.",
		"status":       true,
	})
	srv.Seed("blogs", map[string]any{
		"title":     "Getting Started",
		"creator":   "Admin",
		"content":   "Welcome to the blog.",
		"imageUrl":  "/uploads/start.png",
		"slugs":     "getting-started",
		"timeChips": "5 min",
		"status":    true,
	})
	srv.Seed("users", map[string]any{
		"fullname": "Arjun Patel",
		"country":  "India",
		"city":     "Mumbai",
		"email":    "arjun@example.com",
		"phone":    "9876543210",
	})
	srv.Seed("freebies", map[string]any{
		"fullName": "Meera Nair",
		"email":    "meera@example.com",
		"phone":    "9123456780",
	})
}
