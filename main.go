package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"voice_access/recognition"
	"voice_access/tbot"
)

func main() {
	_ = godotenv.Load()

	var settings tbot.BotSettings
	if err := envconfig.Process("", &settings); err != nil {
		log.Fatalf("failed to load bot configuration: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go shutdown(cancel)

	// регистрация по нескольким файлам на стороне сервиса бывает долгой
	client := recognition.NewClient(settings.RecognitionURL, recognition.WithHttpClient(&http.Client{Timeout: 5 * time.Minute}))

	bot, err := tbot.NewBot(ctx, settings, tbot.WithService(client))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	bot.Run()
}

func shutdown(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	cancel()
	log.Println("shutting down")
}
