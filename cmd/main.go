/*
   TruthVerifier - social media content credibility verifier
   Copyright (C) 2025  Unbewohnte (Kasyanov Nikolay Alexeevich)

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package main

import (
	"Unbewohnte/TruthVerifier/internal/config"
	"Unbewohnte/TruthVerifier/internal/inference"
	"Unbewohnte/TruthVerifier/internal/telegram"
	"Unbewohnte/TruthVerifier/internal/verification"
	"Unbewohnte/TruthVerifier/internal/web"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const CONFIG_NAME string = "config.json"

var (
	CONFIG     *config.Config
	configPath = flag.String("config", CONFIG_NAME, "путь к конфигурационному файлу")
)

func init() {
	flag.Parse()

	var err error
	CONFIG, err = config.ConfigFrom(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Не удалось прочитать конфигурационный файл: %s", err)
		}

		log.Println("Не удалось открыть конфигурационный файл: " + err.Error() + ". Создаем новый...")
		CONFIG = config.DefaultConfig()
		err = CONFIG.Save(*configPath)
		if err != nil {
			log.Panic("Не получилось создать новый конфигурационный файл: " + err.Error())
		}
		os.Exit(0)
	}

	if err := CONFIG.Validate(); err != nil {
		log.Fatalf("Некорректная конфигурация: %s", err)
	}

	if CONFIG.LogsFile != "" {
		logsFile, err := os.OpenFile(CONFIG.LogsFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Panic("Не получилось открыть файл логов: " + err.Error())
		}
		log.SetOutput(io.MultiWriter(logsFile, os.Stdout))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := inference.NewClient(
		CONFIG.Ollama.Host,
		CONFIG.Ollama.GeneralModel,
		CONFIG.Ollama.QueryTimeoutSeconds,
	)
	if err != nil {
		log.Panic(err)
	}

	orchestrator := verification.NewOrchestrator(
		model,
		CONFIG.Ollama.GeneralModel,
		CONFIG.Ollama.PromptTemplate,
	)
	orchestrator.Debug = CONFIG.Debug

	if CONFIG.Telegram.Enabled {
		bot, err := telegram.NewBot(CONFIG.Telegram.ApiToken, orchestrator, CONFIG.Debug)
		if err != nil {
			log.Panic(err)
		}
		go bot.Start(ctx)
	}

	server := web.NewWebServer(orchestrator, CONFIG.Web.StaticDir)
	if err := server.Run(ctx, CONFIG.Web.Port, 10*time.Second); err != nil {
		log.Fatalf("Web server error: %v", err)
	}

	log.Println("Остановлено")
}
