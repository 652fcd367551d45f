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

package telegram

import (
	"Unbewohnte/TruthVerifier/internal/verification"
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Verifier interface {
	Verify(ctx context.Context, request verification.Request) verification.Result
	CheckInferenceServer(ctx context.Context) (verification.HealthReport, int)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	verifier Verifier
	commands []Command
	debug    bool
}

func newBot(verifier Verifier, debug bool) *Bot {
	bot := &Bot{
		verifier: verifier,
		debug:    debug,
	}
	bot.registerCommands()

	return bot
}

func NewBot(apiToken string, verifier Verifier, debug bool) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(apiToken)
	if err != nil {
		return nil, err
	}

	bot := newBot(verifier, debug)
	bot.api = api

	return bot, nil
}

// Start получает обновления до отмены ctx. Переподключение при обрывах
// выполняет сама библиотека.
func (bot *Bot) Start(ctx context.Context) {
	log.Printf("Бот авторизован как %s", bot.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.api.GetUpdatesChan(u)
	defer bot.api.StopReceivingUpdates()

	bot.receive(ctx, updates, func(message *tgbotapi.Message) {
		bot.handleMessage(ctx, message)
	})
}

func (bot *Bot) receive(ctx context.Context, updates tgbotapi.UpdatesChannel, handle func(*tgbotapi.Message)) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go handle(update.Message)
		}
	}
}

func (bot *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From != nil {
		log.Printf("[%s] %s", message.From.UserName, message.Text)
	}

	response, err := bot.respond(ctx, message.Text)
	if err != nil {
		bot.sendError(message.Chat.ID, err.Error(), message.MessageID)
		return
	}
	if response == "" {
		return
	}

	bot.sendMarkdown(message.Chat.ID, response, message.MessageID)
}

// respond подбирает команду по тексту сообщения. Ссылка без команды
// отправляется на проверку.
func (bot *Bot) respond(ctx context.Context, text string) (string, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "/")
	if text == "" {
		return "", nil
	}

	parts := strings.Fields(text)
	name := strings.ToLower(parts[0])
	// Телеграм добавляет имя бота к командам в группах: /verify@SomeBot
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}
	args := strings.Join(parts[1:], " ")

	if command := bot.CommandByName(name); command != nil {
		return command.Call(ctx, args)
	}

	// Проверим, URL ли это
	if strings.HasPrefix(text, "http") {
		verify := bot.CommandByName("verify")
		if verify != nil {
			return verify.Call(ctx, text)
		}
	}

	if bot.debug {
		log.Printf("Неизвестная команда: %s", text)
	}

	return bot.commandSuggestions(name), nil
}

func (bot *Bot) sendMarkdown(chatID int64, text string, replyTo int) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyToMessageID = replyTo
	if _, err := bot.api.Send(msg); err != nil {
		// Ответ модели может сломать разметку, отправляем как есть
		log.Printf("Не удалось отправить сообщение с разметкой: %v", err)
		msg.ParseMode = ""
		if _, err := bot.api.Send(msg); err != nil {
			log.Printf("Не удалось отправить сообщение: %v", err)
		}
	}
}

func (bot *Bot) sendError(chatID int64, text string, replyTo int) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	msg.ReplyToMessageID = replyTo
	if _, err := bot.api.Send(msg); err != nil {
		log.Printf("Не удалось отправить сообщение об ошибке: %v", err)
	}
}
