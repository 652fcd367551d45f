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

package config

import (
	"Unbewohnte/TruthVerifier/internal/verification"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type OllamaConf struct {
	// Пустой адрес - брать OLLAMA_HOST из окружения
	Host                string `json:"host"`
	GeneralModel        string `json:"general_model"`
	QueryTimeoutSeconds uint   `json:"query_timeout_seconds"`
	PromptTemplate      string `json:"prompt_template"`
}

type WebConf struct {
	Port      uint   `json:"port"`
	StaticDir string `json:"static_dir"`
}

type TelegramConf struct {
	Enabled  bool   `json:"enabled"`
	ApiToken string `json:"api_token"`
}

type Config struct {
	Ollama   OllamaConf   `json:"ollama"`
	Web      WebConf      `json:"web"`
	Telegram TelegramConf `json:"telegram"`
	LogsFile string       `json:"logs_file"`
	Debug    bool         `json:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Ollama: OllamaConf{
			Host:                "http://localhost:11434",
			GeneralModel:        "llama3",
			QueryTimeoutSeconds: 0,
			PromptTemplate:      verification.DefaultPromptTemplate,
		},
		Web: WebConf{
			Port:      3000,
			StaticDir: "./web",
		},
		Telegram: TelegramConf{
			Enabled:  false,
			ApiToken: "tg_api_token",
		},
		LogsFile: "logs.txt",
		Debug:    false,
	}
}

// Validate проверяет значения, без которых запуск невозможен
func (conf *Config) Validate() error {
	if conf.Ollama.GeneralModel == "" {
		return fmt.Errorf("не указана модель Ollama")
	}
	if conf.Web.Port == 0 || conf.Web.Port > 65535 {
		return fmt.Errorf("некорректный порт веб-сервера: %d", conf.Web.Port)
	}
	if conf.Telegram.Enabled && conf.Telegram.ApiToken == "" {
		return fmt.Errorf("телеграм включен, но api_token не указан")
	}

	return nil
}

func (conf *Config) Save(filepath string) error {
	file, err := os.OpenFile(filepath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	jsonBytes, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return err
	}

	_, err = file.Write(jsonBytes)
	return err
}

// ConfigFrom читает конфигурацию. Отсутствующие в файле поля берутся
// из конфигурации по умолчанию.
func ConfigFrom(filepath string) (*Config, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	err = json.Unmarshal(contents, conf)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать %s: %w", filepath, err)
	}

	return conf, nil
}
