package impl

import (
	"io"
	"log/slog"

	"github.com/MaulikI8/imperialwatch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Stripe: &config.StripeConfig{
			SecretKey: "sk_test_fixture",
			Currency:  "usd",
		},
		Store: &config.StoreConfig{
			ProductLimit: 50,
		},
	}
}
