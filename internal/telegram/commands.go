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
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Command struct {
	Name        string
	Description string
	Example     string
	Group       string
	Call        func(context.Context, string) (string, error)
}

func (bot *Bot) NewCommand(cmd Command) {
	bot.commands = append(bot.commands, cmd)
}

func (bot *Bot) CommandByName(name string) *Command {
	for i := range bot.commands {
		if bot.commands[i].Name == name {
			return &bot.commands[i]
		}
	}

	return nil
}

func (bot *Bot) registerCommands() {
	bot.NewCommand(Command{
		Name:        "help",
		Description: "Напечатать вспомогательное сообщение",
		Group:       "Общее",
		Call:        bot.Help,
	})

	bot.NewCommand(Command{
		Name:        "about",
		Description: "Напечатать информацию о боте",
		Group:       "Общее",
		Call:        bot.About,
	})

	bot.NewCommand(Command{
		Name:        "verify",
		Description: "Проверить достоверность видео по ссылке",
		Example:     "verify https://instagram.com/reel/abc",
		Group:       "Проверка",
		Call:        bot.Verify,
	})

	bot.NewCommand(Command{
		Name:        "health",
		Description: "Проверить доступность Ollama",
		Group:       "LLM",
		Call:        bot.Health,
	})

	bot.NewCommand(Command{
		Name:        "models",
		Description: "Напечатать доступные локальные LLM",
		Group:       "LLM",
		Call:        bot.ListModels,
	})
}

func constructCommandHelpMessage(command Command) string {
	commandHelp := ""
	commandHelp += fmt.Sprintf("\n*Команда:* \"%s\"\n*Описание:* %s\n", command.Name, command.Description)
	if command.Example != "" {
		commandHelp += fmt.Sprintf("*Пример:* `%s`\n", command.Example)
	}

	return commandHelp
}

func (bot *Bot) Help(ctx context.Context, args string) (string, error) {
	if strings.TrimSpace(args) != "" {
		// Ответить лишь по конкретной команде
		command := bot.CommandByName(strings.TrimSpace(args))
		if command != nil {
			return constructCommandHelpMessage(*command), nil
		}
	}

	var helpMessage string

	commandsByGroup := make(map[string][]Command)
	for _, command := range bot.commands {
		commandsByGroup[command.Group] = append(commandsByGroup[command.Group], command)
	}

	groups := []string{}
	for g := range commandsByGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, group := range groups {
		helpMessage += fmt.Sprintf("\n\n*[%s]*\n", group)
		for _, command := range commandsByGroup[group] {
			helpMessage += constructCommandHelpMessage(command)
		}
	}

	return helpMessage, nil
}

func (bot *Bot) About(ctx context.Context, args string) (string, error) {
	return `TruthVerifier - проверка достоверности видео из социальных сетей.

Отправьте ссылку на Reels, TikTok или YouTube Shorts, и локальная LLM оценит достоверность содержимого.
Загрузка видео пока не реализована, поэтому транскрипция и анализ кадров - заглушки.

Лицензия: GPLv3
`, nil
}

func (bot *Bot) Verify(ctx context.Context, args string) (string, error) {
	url := strings.TrimSpace(args)
	if url == "" {
		return "", errors.New("вы не указали URL")
	}

	result := bot.verifier.Verify(ctx, verification.Request{URL: url})

	return "📋 *Результаты проверки*\n\n" + verification.FormatResult(url, result), nil
}

func (bot *Bot) Health(ctx context.Context, args string) (string, error) {
	report, _ := bot.verifier.CheckInferenceServer(ctx)
	if report.Status != verification.StatusSuccess {
		return "", fmt.Errorf("%s: %s", report.Message, report.Error)
	}

	return fmt.Sprintf("%s Установлено моделей: %d", report.Message, len(report.ModelList())), nil
}

func (bot *Bot) ListModels(ctx context.Context, args string) (string, error) {
	report, _ := bot.verifier.CheckInferenceServer(ctx)
	if report.Status != verification.StatusSuccess {
		return "", fmt.Errorf("не удалось получить список локальных моделей: %s", report.Error)
	}

	response := "Доступные модели:\n"
	for _, model := range report.ModelList() {
		response += fmt.Sprintf("`%s` (%s, %s)\n",
			model.Name,
			model.Details.ParameterSize,
			model.Details.QuantizationLevel,
		)
	}

	return response, nil
}
